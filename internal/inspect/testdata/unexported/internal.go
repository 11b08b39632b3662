package hidden

type flyer interface {
	FlightAbility() string
}

type sparrow struct{}

func (sparrow) FlightAbility() string { return "can fly" }

type Penguin struct{}

func (Penguin) FlightAbility() string { return "cannot fly; swims instead" }

type Watcher interface {
	FlightAbility() string
}
