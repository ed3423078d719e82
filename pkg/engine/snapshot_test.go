// pkg/engine/snapshot_test.go
package engine

import (
	"testing"

	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

func TestSnapshotRestore_RewindsPhysics(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 10; i++ {
		g.Step()
	}

	snap := g.Snapshot()
	rocketThen := g.Rocket.Body
	planetsThen := make(map[entity.ID]physics.Body)
	for id, c := range g.Celestials {
		planetsThen[id] = c.Body
	}

	g.SetControls(physics.ControlIntent{Thrust: true})
	for i := 0; i < 50; i++ {
		g.Step()
	}
	g.SetControls(physics.ControlIntent{})

	if g.Rocket.Body.Position == rocketThen.Position {
		t.Fatal("simulation did not advance between snapshot and restore")
	}

	if err := g.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if g.Rocket.Body.Position != rocketThen.Position || g.Rocket.Body.Velocity != rocketThen.Velocity {
		t.Error("rocket body not rewound")
	}
	for id, want := range planetsThen {
		got := g.Celestials[id].Body
		if got.Position != want.Position || got.Velocity != want.Velocity {
			t.Errorf("celestial %d not rewound", id)
		}
	}
	if g.CurrentTick != snap.Tick {
		t.Errorf("tick = %d, expected %d", g.CurrentTick, snap.Tick)
	}
}

func TestSnapshotRestore_DeepCopy(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	before := snap.Rocket.Position
	for i := 0; i < 20; i++ {
		g.Step()
	}

	if snap.Rocket.Position != before {
		t.Error("snapshot shares state with the live simulation")
	}
}

func TestSnapshotRestore_LandingAttachment(t *testing.T) {
	g := newTestGame(t)
	planet := g.World.Planets[0]
	landRocket(t, g, planet)

	snap := g.Snapshot()
	if snap.LandedOn != planet.ID {
		t.Fatalf("snapshot landing parent = %d, expected %d", snap.LandedOn, planet.ID)
	}

	// Launch, fly away, then rewind.
	g.SetControls(physics.ControlIntent{TakeoffHold: true})
	for i := 0; i < 30; i++ {
		g.Step()
	}
	g.SetControls(physics.ControlIntent{})
	if g.Rocket.Landed() {
		t.Fatal("rocket still landed after takeoff")
	}

	if err := g.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if !g.Rocket.Landed() {
		t.Fatal("landing attachment not restored")
	}
	if !g.Rocket.Landing.LandedOn(&planet.Body) {
		t.Error("restored to the wrong landing parent")
	}

	// The restored rocket rides its planet again.
	g.Step()
	if g.Rocket.Body.Velocity != planet.Body.Velocity {
		t.Error("restored rocket not pinned to the planet")
	}
}

func TestRestore_RejectsForeignSnapshot(t *testing.T) {
	g := newTestGame(t)
	other := newTestGame(t)

	if err := g.Restore(other.Snapshot()); err == nil {
		t.Error("expected error restoring a snapshot from another session")
	}
}
