package behavioral

import (
	"fmt"
	"io"

	"github.com/patternplay/patternplay/pkg/catalog"
)

// Mediator relays messages between registered participants.
// Participants never talk to each other directly.
type Mediator interface {
	Join(p Participant)
	Broadcast(w io.Writer, senderID, message string)
}

// Participant is one member of a chat room
type Participant interface {
	ID() string
	Receive(w io.Writer, from, message string)
}

// chatRoom owns an explicit id-keyed participant map plus a stable join
// order so broadcasts stay deterministic.
type chatRoom struct {
	order        []string
	participants map[string]Participant
}

func newChatRoom() *chatRoom {
	return &chatRoom{participants: make(map[string]Participant)}
}

func (r *chatRoom) Join(p Participant) {
	if _, exists := r.participants[p.ID()]; exists {
		return
	}
	r.participants[p.ID()] = p
	r.order = append(r.order, p.ID())
}

// Broadcast delivers to everyone except the sender, compared by identity
func (r *chatRoom) Broadcast(w io.Writer, senderID, message string) {
	for _, id := range r.order {
		if id == senderID {
			continue
		}
		r.participants[id].Receive(w, senderID, message)
	}
}

type chatUser struct {
	id   string
	room Mediator
}

func (u *chatUser) ID() string { return u.id }

func (u *chatUser) Receive(w io.Writer, from, message string) {
	fmt.Fprintf(w, "%s received from %s: %s\n", u.id, from, message)
}

func (u *chatUser) Send(w io.Writer, message string) {
	fmt.Fprintf(w, "%s sends: %s\n", u.id, message)
	u.room.Broadcast(w, u.id, message)
}

// NewMediatorDemo creates the mediator demo
func NewMediatorDemo() catalog.Demo {
	return catalog.New(
		"mediator",
		catalog.GroupBehavioral,
		"Routes chat messages through a room so users stay decoupled",
		func(w io.Writer) {
			room := newChatRoom()

			alice := &chatUser{id: "alice", room: room}
			bob := &chatUser{id: "bob", room: room}
			carol := &chatUser{id: "carol", room: room}

			room.Join(alice)
			room.Join(bob)
			room.Join(carol)

			alice.Send(w, "standup in five minutes")
			bob.Send(w, "on my way")
		},
	)
}
