package puzzle_test

import (
	"errors"
	"math/rand/v2"
	"sort"
	"testing"
	"time"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/business/core/puzzle"
	"github.com/ardanlabs/questhub/business/data/catalog"
	"github.com/ardanlabs/questhub/foundation/timer"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func blocks() []catalog.Block {
	return []catalog.Block{
		{ID: 1, Category: "genesis", Content: "Genesis Block", CorrectPosition: 0},
		{ID: 2, Category: "transaction", Content: "Transaction Data", CorrectPosition: 1},
		{ID: 3, Category: "hash", Content: "Hash Link", CorrectPosition: 2},
		{ID: 4, Category: "reward", Content: "Mining Reward", CorrectPosition: 3},
	}
}

type recorder struct {
	completes []int
	notices   []game.Notice
}

func (r *recorder) reporter() game.Reporter {
	return game.Reporter{
		OnComplete: func(id string, points int) { r.completes = append(r.completes, points) },
		Notify:     func(n game.Notice) { r.notices = append(r.notices, n) },
	}
}

func newPuzzle(t *testing.T, rec *recorder) (*puzzle.Puzzle, *timer.Manual) {
	sched := timer.NewManual()
	p, err := puzzle.New(blocks(), sched, rec.reporter(), puzzle.WithSeed(7))
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct a puzzle: %s", failed, err)
	}
	return p, sched
}

func TestOrderedPlacement(t *testing.T) {
	t.Log("Given the need to score a chain placed in order.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen placing every block in its position.", testID)
		{
			var rec recorder
			p, sched := newPuzzle(t, &rec)
			p.Start()

			bs := blocks()
			sort.Slice(bs, func(i, j int) bool { return bs[i].CorrectPosition < bs[j].CorrectPosition })
			for _, b := range bs {
				if err := p.Place(b.ID); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to place block %d: %s", failed, testID, b.ID, err)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould be able to place every block.", success, testID)

			if snap := p.Snapshot(); snap.Complete {
				t.Fatalf("\t%s\tTest %d:\tShould wait for the end delay.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould wait for the end delay.", success, testID)

			sched.Advance(puzzle.DefaultEndDelay)

			snap := p.Snapshot()
			if !snap.Complete || snap.Score != 400 {
				t.Fatalf("\t%s\tTest %d:\tShould score 400, got %d.", failed, testID, snap.Score)
			}
			t.Logf("\t%s\tTest %d:\tShould score 400.", success, testID)

			for i, s := range snap.Slots {
				if s.Correct == nil || !*s.Correct {
					t.Fatalf("\t%s\tTest %d:\tShould mark slot %d correct.", failed, testID, i)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould mark every slot correct.", success, testID)

			if len(rec.completes) != 1 || rec.completes[0] != 400 {
				t.Fatalf("\t%s\tTest %d:\tShould report completion once, got %v.", failed, testID, rec.completes)
			}
			t.Logf("\t%s\tTest %d:\tShould report completion once.", success, testID)

			last := rec.notices[len(rec.notices)-1]
			if last.Title != "Perfect Score!" || last.Level != game.LevelSuccess {
				t.Fatalf("\t%s\tTest %d:\tShould notify a perfect score, got %+v.", failed, testID, last)
			}
			t.Logf("\t%s\tTest %d:\tShould notify a perfect score.", success, testID)

			if sched.Live() != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould leave no timers, got %d.", failed, testID, sched.Live())
			}
			t.Logf("\t%s\tTest %d:\tShould leave no timers.", success, testID)
		}
	}
}

func TestTimeout(t *testing.T) {
	t.Log("Given the need to score a partial chain when time runs out.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen two blocks are placed, one of them correctly.", testID)
		{
			var rec recorder
			p, sched := newPuzzle(t, &rec)
			p.Start()

			p.Place(1)
			p.Place(3)

			sched.Advance(59 * time.Second)
			if snap := p.Snapshot(); !snap.Active || snap.TimeLeft != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould still be running: %+v", failed, testID, snap)
			}
			t.Logf("\t%s\tTest %d:\tShould still be running before expiry.", success, testID)

			sched.Advance(time.Second)

			snap := p.Snapshot()
			if !snap.Complete || snap.Score != 100 {
				t.Fatalf("\t%s\tTest %d:\tShould score 100, got %d.", failed, testID, snap.Score)
			}
			t.Logf("\t%s\tTest %d:\tShould score the partial placement.", success, testID)

			if len(rec.completes) != 1 || rec.completes[0] != 100 {
				t.Fatalf("\t%s\tTest %d:\tShould report completion once, got %v.", failed, testID, rec.completes)
			}
			t.Logf("\t%s\tTest %d:\tShould report completion once.", success, testID)

			if err := p.Place(2); !errors.Is(err, game.ErrInactive) {
				t.Fatalf("\t%s\tTest %d:\tShould reject placement after the end, got %v.", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould reject placement after the end.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen a block is removed during the end delay.", testID)
		{
			var rec recorder
			p, sched := newPuzzle(t, &rec)
			p.Start()

			for _, id := range []int{1, 2, 3, 4} {
				p.Place(id)
			}
			if err := p.Remove(0); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to remove: %s", failed, testID, err)
			}

			sched.Advance(time.Second)
			if snap := p.Snapshot(); snap.Complete || !snap.Active {
				t.Fatalf("\t%s\tTest %d:\tShould cancel the pending end.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould cancel the pending end.", success, testID)
		}
	}
}

func TestBijection(t *testing.T) {
	t.Log("Given the need to keep every block in exactly one place.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen placing and removing at random.", testID)
		{
			var rec recorder
			p, _ := newPuzzle(t, &rec)
			p.Start()

			rng := rand.New(rand.NewPCG(1, 2))
			for i := range 500 {
				switch rng.IntN(2) {
				case 0:
					p.Place(1 + rng.IntN(4))
				default:
					p.Remove(rng.IntN(puzzle.SlotCount))
				}

				snap := p.Snapshot()

				inSlots := make(map[int]bool)
				for _, s := range snap.Slots {
					if s.Block != nil {
						if inSlots[s.Block.ID] {
							t.Fatalf("\t%s\tTest %d:\tStep %d: block %d is in two slots.", failed, testID, i, s.Block.ID)
						}
						inSlots[s.Block.ID] = true
					}
				}

				for _, b := range snap.Pool {
					if b.Placed != inSlots[b.ID] {
						t.Fatalf("\t%s\tTest %d:\tStep %d: block %d placed=%v but in slot=%v.", failed, testID, i, b.ID, b.Placed, inSlots[b.ID])
					}
				}
			}
			t.Logf("\t%s\tTest %d:\tShould keep placed flags and slots in agreement.", success, testID)
		}
	}
}

func TestRestart(t *testing.T) {
	t.Log("Given the need to never leave a residual timer.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen starting over repeatedly.", testID)
		{
			var rec recorder
			p, sched := newPuzzle(t, &rec)
			p.Start()
			p.Place(1)
			sched.Advance(10 * time.Second)
			p.Start()
			p.Start()

			if sched.Live() != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould run a single countdown, got %d.", failed, testID, sched.Live())
			}
			t.Logf("\t%s\tTest %d:\tShould run a single countdown.", success, testID)

			snap := p.Snapshot()
			if snap.TimeLeft != puzzle.DefaultCountdown || len(snap.Pool) != 4 {
				t.Fatalf("\t%s\tTest %d:\tShould reset the session: %+v", failed, testID, snap)
			}
			for _, b := range snap.Pool {
				if b.Placed {
					t.Fatalf("\t%s\tTest %d:\tShould return every block to the pool.", failed, testID)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould reset the session.", success, testID)

			p.Stop()
			if sched.Live() != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould leave no timers after stop.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould leave no timers after stop.", success, testID)
		}
	}
}

func TestConstruction(t *testing.T) {
	t.Log("Given the need to reject a malformed chain.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the correct positions repeat.", testID)
		{
			bs := blocks()
			bs[1].CorrectPosition = 0
			if _, err := puzzle.New(bs, timer.NewManual(), game.Reporter{}); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould fail construction.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould fail construction.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen there are too few blocks.", testID)
		{
			if _, err := puzzle.New(blocks()[:3], timer.NewManual(), game.Reporter{}); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould fail construction.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould fail construction.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen input is invalid.", testID)
		{
			var rec recorder
			p, _ := newPuzzle(t, &rec)
			p.Start()

			if err := p.Place(9); game.KindOf(err) != game.KindNotFound {
				t.Fatalf("\t%s\tTest %d:\tShould reject an unknown block, got %v.", failed, testID, err)
			}
			p.Place(1)
			if err := p.Place(1); !errors.Is(err, game.ErrAlreadyPlaced) {
				t.Fatalf("\t%s\tTest %d:\tShould reject a placed block, got %v.", failed, testID, err)
			}
			if err := p.Remove(4); game.KindOf(err) != game.KindOutOfRange {
				t.Fatalf("\t%s\tTest %d:\tShould reject a slot out of range, got %v.", failed, testID, err)
			}
			if err := p.Remove(3); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould ignore an empty slot, got %v.", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould reject invalid input.", success, testID)
		}
	}
}
