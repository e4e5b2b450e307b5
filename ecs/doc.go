// Package ecs provides ECS adapters for quadplane's controller events.
//
// The primary adapter is [NewDonburiSink], which publishes controller events
// (rotations, spins, breathing start/reverse/cancel) into a [Donburi] world
// as typed events. Subscribe to [ControllerEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	controller.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
