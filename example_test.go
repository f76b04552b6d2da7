package event_test

import (
	"fmt"

	"github.com/pedrotrschneider/blob-event"
)

func Example() {
	bus := event.New[int]()

	total := 0
	bus.SubscribeFunc(func(n int) {
		total += n
	})

	bus.Invoke(5)
	bus.Invoke(10)
	bus.Invoke(3)

	fmt.Println(total)
	// Output: 18
}

func ExampleEvent_Unsubscribe() {
	bus := event.New[string]()

	sub := bus.SubscribeFunc(func(msg string) {
		fmt.Println("received:", msg)
	})

	bus.Invoke("hello")
	bus.Unsubscribe(sub)
	bus.Invoke("goodbye") // nobody listening

	// Output: received: hello
}

func ExampleEvent_Clone() {
	bus := event.New[int]()
	producer := bus.Clone()

	bus.SubscribeFunc(func(n int) {
		fmt.Println("got", n)
	})

	// The clone shares the registry, so invoking through it reaches
	// handlers subscribed through the original.
	producer.Invoke(42)

	// Output: got 42
}
