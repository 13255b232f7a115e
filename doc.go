// Package lambda is a small retained-mode 2D engine scaffold: an entity tree
// with transforms, hit testing and keyboard focus, keyframe animations, and
// a particle system. Rendering, input and audio are behind thin interfaces
// so the same app runs in a window ([ebitenhost]) or a terminal
// ([termhost]).
//
// # Quick start
//
//	app := lambda.NewApp()
//	box := app.Root().Add("box", func(e *lambda.Entity) {
//		e.Position = lambda.Pt(100, 100)
//		e.Bounds = lambda.R(-20, -20, 40, 40)
//	})
//	box.OnDraw(func(e *lambda.Entity, g lambda.Graphics) {
//		g.SetColor(lambda.ColorOrange)
//		g.Fill(lambda.RectShape(e.Bounds))
//	})
//	ebitenhost.Run(app, lambda.DefaultConfig())
//
// # Entity tree
//
// Every object in a scene is an [Entity]. Entities form a tree rooted at
// [App.Root]. Each entity has a position, a rotation, a uniform scale and
// a bounding rectangle in its local space; which of the parent's transform
// parts it inherits is controlled by the Inherit* fields.
//
// Behavior is attached with [Entity.OnUpdate], [Entity.OnDraw],
// [Entity.OnClick] and [Entity.OnKey], or with [Component] values. Tree
// changes made from inside an update callback take effect once the
// callback's entity finishes its pass.
//
// # Animation
//
// [AnimateFloat], [AnimatePoint] and [AnimateColor] interpolate between
// evenly spaced keyframes in one of four [LoopMode] values. The [Tween]
// component animates entity fields toward a target with [gween] easing.
//
// # Particles
//
// Build a [Particle] with the With* methods and hand it to
// [ParticleSystem.Emit], or attach an [Emitter] to an entity.
//
// [ebitenhost]: https://pkg.go.dev/github.com/granseal/lambda/ebitenhost
// [termhost]: https://pkg.go.dev/github.com/granseal/lambda/termhost
// [gween]: https://github.com/tanema/gween
package lambda
