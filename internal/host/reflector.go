package host

// AttrHideCompleted is the host attribute mirroring the hide-completed flag.
const AttrHideCompleted = "hideCompleted"

// AttributeSink receives reflected attributes.
//
//go:generate mockgen -source=reflector.go -destination=mocks/mock_attribute_sink.go -package=mocks
type AttributeSink interface {
	SetAttribute(name, value string)
	RemoveAttribute(name string)
}

// Reflector mirrors a boolean property onto a presence attribute: present
// (with an empty value) when true, absent when false.
type Reflector struct {
	sink AttributeSink
	name string
}

func NewReflector(sink AttributeSink, name string) *Reflector {
	return &Reflector{sink: sink, name: name}
}

func (r *Reflector) Reflect(value bool) {
	if value {
		r.sink.SetAttribute(r.name, "")
		return
	}
	r.sink.RemoveAttribute(r.name)
}
