package host_test

import (
	"testing"

	"github.com/sandeepkv93/todolist/internal/host"
	"github.com/sandeepkv93/todolist/internal/host/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReflectorSetsAndRemovesAttribute(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockAttributeSink(ctrl)

	gomock.InOrder(
		sink.EXPECT().SetAttribute(host.AttrHideCompleted, ""),
		sink.EXPECT().RemoveAttribute(host.AttrHideCompleted),
	)

	r := host.NewReflector(sink, host.AttrHideCompleted)
	r.Reflect(true)
	r.Reflect(false)
}

func TestElementAttributes(t *testing.T) {
	el := host.NewElement("todo-list")
	var seen []string
	el.Observe(func(name, value string, present bool) {
		if present {
			seen = append(seen, "set "+name+"="+value)
		} else {
			seen = append(seen, "remove "+name)
		}
	})

	el.SetAttribute("hideCompleted", "")
	el.SetAttribute("hideCompleted", "")
	el.SetAttribute("lang", "en")
	assert.True(t, el.HasAttribute("hideCompleted"))
	assert.Equal(t, "hideCompleted lang=en", el.String())

	el.RemoveAttribute("hideCompleted")
	el.RemoveAttribute("hideCompleted")
	_, ok := el.Attribute("hideCompleted")
	assert.False(t, ok)

	assert.Equal(t, []string{"set hideCompleted=", "set lang=en", "remove hideCompleted"}, seen)
	assert.Equal(t, "todo-list", el.Name())
}
