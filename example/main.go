package main

import (
	"fmt"

	"github.com/mgnsk/weaklist"
)

type subscriber struct {
	name string
}

func main() {
	m := weaklist.NewMetrics()
	subscribers := weaklist.New(
		weaklist.WithMetrics[*subscriber](m),
		weaklist.WithDropFunc(func(s *subscriber) {
			fmt.Printf("%s unsubscribed\n", s.name)
		}),
	)

	alice := subscribers.Push(&subscriber{name: "alice"})
	bob := subscribers.Push(&subscriber{name: "bob"})

	// Broadcast to everyone still subscribed.
	broadcast := func(msg string) {
		handles := subscribers.UpgradeAll()
		for _, h := range handles {
			fmt.Printf("%s <- %s\n", h.Value().name, msg)
			h.Drop()
		}
	}

	broadcast("hello")

	// Dropping the only handle removes bob from the list.
	bob.Drop()
	broadcast("bye")

	alice.Drop()

	fmt.Println(m)
}
