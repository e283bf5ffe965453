// Package generator provides pull-driven generators: producer functions that
// suspend at yield points to hand values one at a time to a consumer, and
// optionally receive a reply back before resuming.
//
// A producer is an ordinary function taking a *Context. It runs on its own
// goroutine, but control is handed off strictly between the two sides: the
// producer only ever executes between a consumer pull and its next suspension
// point, one step per pull, so producer and consumer never run concurrently.
//
// Producers are bound either to caller-owned storage with Bind, which is
// cheap but must not outlive the Storage, or to shared heap storage with New,
// which escapes freely:
//
//	g := generator.New(func(c *generator.Context[int, int]) {
//		health := 400
//		for health >= 20 {
//			damage := c.Yield(health).Await()
//			health += 3 - damage
//		}
//	})
//	defer g.Close()
//
//	for {
//		x, ok := g.Next()
//		if !ok {
//			break
//		}
//		x.Handle(func(v int) int { return v * 2 / 7 })
//	}
//
// Each pulled value arrives wrapped in an Exchange that owes exactly one
// reply; consumers that do not need the round trip can adapt the generator
// into a plain value iterator with Defaults or Provider.
package generator
