package record

import (
	"log"

	"github.com/lixenwraith/hyperspace/events"
	"github.com/lixenwraith/hyperspace/game"
)

// Keeper holds the in-memory record and persists it when a run beats it
type Keeper struct {
	store    *Store
	record   Record
	lastBest bool
	err      error
}

// NewKeeper loads the current record from store
func NewKeeper(store *Store) *Keeper {
	return &Keeper{store: store, record: store.Load()}
}

func (k *Keeper) EventTypes() []events.EventType {
	return []events.EventType{events.EventRunStarted, events.EventRunEnded}
}

func (k *Keeper) HandleEvent(_ *game.Snapshot, ev events.GameEvent) {
	switch ev.Type {
	case events.EventRunStarted:
		k.lastBest = false

	case events.EventRunEnded:
		p, ok := ev.Payload.(*events.RunEndedPayload)
		if !ok {
			return
		}
		k.lastBest = k.record.Improves(p.Score, p.Level)
		if !k.lastBest {
			return
		}
		k.record = k.record.Merge(p.Score, p.Level)
		if err := k.store.Save(k.record); err != nil {
			k.err = err
			log.Printf("[record] save failed: %v", err)
			return
		}
		log.Printf("[record] new record: score=%d level=%d", int(k.record.HighScore), k.record.BestLevel)
	}
}

// Record returns the best result seen, including the run that just ended
func (k *Keeper) Record() Record {
	return k.record
}

// LastRunWasBest reports whether the most recent ended run set a new maximum
func (k *Keeper) LastRunWasBest() bool {
	return k.lastBest
}

// Err returns the last save error, nil when the record is on disk
func (k *Keeper) Err() error {
	return k.err
}
