// blendemo is a small texture compositing demo for Ebitengine, a 2D game
// engine made by Hajime Hoshi for Golang. A background image is drawn and
// then a foreground image is drawn four times on top of it, each time with
// a different blend mode: none, alpha blend, additive and modulate.
//
// The demo can be driven from code through a [*Compositor]:
//   compositor := blendemo.NewCompositor()
//   err := compositor.DrawScene(canvas, &blendemo.Scene{
//       Layout: blendemo.DefaultLayout(),
//       Modes: blendemo.DefaultModes(),
//       Background: bg, // see the texture subpackage
//       Foreground: fg,
//   })
//   if err != nil { panic(err) }
//
// Individual draws are also available through [Compositor.SetBlendMode]()
// and [Compositor.Draw]().
//
// With -tags cputext, Ebitengine is not used at all: targets become
// [image/draw.Image] values and blending is done on the CPU by the mix
// subpackage. The cmd/blendemo binary then writes the composite to a
// PNG file instead of opening a window.
package blendemo
