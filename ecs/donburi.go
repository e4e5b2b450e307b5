package ecs

import (
	"github.com/phanxgames/quadplane"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ControllerEventType is the Donburi event type for quadplane controller
// events. Events are queued until ProcessEvents is called on the world.
var ControllerEventType = events.NewEventType[quadplane.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) quadplane.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event quadplane.Event) {
	ControllerEventType.Publish(s.world, event)
}
