package imctx_test

import (
	"fmt"

	"github.com/plus3/imdi/gui"
	"github.com/plus3/imdi/gui/guitest"
	"github.com/plus3/imdi/imctx"
)

func ExampleContext_Frame() {
	var ev events
	provider := newFakeProvider(&ev)
	platform := &fakeBackend{name: "platform", ev: &ev}
	renderer := &fakeRenderer{fakeBackend: fakeBackend{name: "renderer", ev: &ev}}

	ctx, err := imctx.New(provider, imctx.DefaultConfig(),
		imctx.WithLogger(quietLogger()),
		imctx.WithUI(guitest.NewRecorder()),
	)
	if err != nil {
		panic(err)
	}
	ctx.AddBackend(platform)
	ctx.AddBackend(renderer)
	if err := ctx.Initialize(); err != nil {
		panic(err)
	}

	ctx.Frame(func(ui gui.ImGui) {
		gui.Window(ui, "Hello", func() {
			ui.Text("world")
		})
	})
	ctx.Dispose()

	for _, e := range ev {
		fmt.Println(e)
	}
	// Output:
	// provider.CreateContext
	// platform.Init
	// renderer.Init
	// platform.NewFrame
	// renderer.NewFrame
	// provider.NewFrame
	// provider.Render
	// renderer.RenderDrawData
	// renderer.Shutdown
	// platform.Shutdown
	// provider.DestroyContext
}
