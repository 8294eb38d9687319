package quiz_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/business/core/quiz"
	"github.com/ardanlabs/questhub/business/data/catalog"
	"github.com/ardanlabs/questhub/foundation/timer"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func questions() []catalog.Question {
	return []catalog.Question{
		{ID: 1, Prompt: "one", Options: []string{"a", "b", "c", "d"}, Correct: 1, Explanation: "b"},
		{ID: 2, Prompt: "two", Options: []string{"a", "b", "c", "d"}, Correct: 0, Explanation: "a"},
		{ID: 3, Prompt: "three", Options: []string{"a", "b", "c", "d"}, Correct: 1, Explanation: "b"},
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

func newQuiz(t *testing.T, rec *recorder) (*quiz.Quiz, *timer.Manual) {
	sched := timer.NewManual()
	q, err := quiz.New(questions(), sched, rec.reporter())
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct a quiz: %s", failed, err)
	}
	return q, sched
}

func TestScenario(t *testing.T) {
	t.Log("Given the need to score a quiz answered correctly, incorrectly and by timeout.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen playing three questions.", testID)
		{
			var rec recorder
			q, sched := newQuiz(t, &rec)
			q.Start()

			if err := q.Submit(1); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to answer question 1: %s", failed, testID, err)
			}
			if err := q.Advance(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to advance: %s", failed, testID, err)
			}
			if err := q.Submit(3); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to answer question 2: %s", failed, testID, err)
			}
			if err := q.Advance(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to advance: %s", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to answer two questions.", success, testID)

			sched.Advance(quiz.DefaultCountdown * quiz.DefaultTick)

			snap := q.Snapshot()
			if !snap.Revealed || snap.Selected != quiz.NoAnswer {
				t.Fatalf("\t%s\tTest %d:\tShould auto-submit no answer on timeout: %+v", failed, testID, snap)
			}
			t.Logf("\t%s\tTest %d:\tShould auto-submit no answer on timeout.", success, testID)

			if err := q.Advance(); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to finish: %s", failed, testID, err)
			}

			snap = q.Snapshot()
			if !snap.Complete || snap.Score != 10 || snap.Percentage != 33 {
				t.Fatalf("\t%s\tTest %d:\tShould score 10 points and 33%%, got %d and %d%%.", failed, testID, snap.Score, snap.Percentage)
			}
			t.Logf("\t%s\tTest %d:\tShould score 10 points and 33%%.", success, testID)

			if len(snap.Badges) != 0 {
				t.Errorf("\t%s\tTest %d:\tShould earn no badges, got %v.", failed, testID, snap.Badges)
			} else {
				t.Logf("\t%s\tTest %d:\tShould earn no badges.", success, testID)
			}

			if len(rec.completes) != 1 || rec.completes[0] != 10 {
				t.Fatalf("\t%s\tTest %d:\tShould report completion once with 10 points, got %v.", failed, testID, rec.completes)
			}
			t.Logf("\t%s\tTest %d:\tShould report completion once with 10 points.", success, testID)

			if !snap.Answers[2].TimedOut || snap.Answers[0].Correct != true || snap.Answers[1].Correct {
				t.Fatalf("\t%s\tTest %d:\tShould record the answer history: %+v", failed, testID, snap.Answers)
			}
			t.Logf("\t%s\tTest %d:\tShould record the answer history.", success, testID)

			if sched.Live() != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould leave no countdown running, got %d.", failed, testID, sched.Live())
			}
			t.Logf("\t%s\tTest %d:\tShould leave no countdown running.", success, testID)
		}
	}
}

func TestCountdown(t *testing.T) {
	t.Log("Given the need to auto-submit exactly once per question.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the countdown runs out.", testID)
		{
			var rec recorder
			q, sched := newQuiz(t, &rec)
			q.Start()

			sched.Advance(10 * time.Second)
			if got := q.Snapshot().Remaining; got != 20 {
				t.Fatalf("\t%s\tTest %d:\tShould have 20 ticks left, got %d.", failed, testID, got)
			}
			t.Logf("\t%s\tTest %d:\tShould count down once per tick.", success, testID)

			sched.Advance(5 * time.Minute)

			snap := q.Snapshot()
			if len(snap.Answers) != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould auto-submit exactly once, got %d.", failed, testID, len(snap.Answers))
			}
			t.Logf("\t%s\tTest %d:\tShould auto-submit exactly once.", success, testID)

			if snap.Remaining != 0 || snap.Active {
				t.Fatalf("\t%s\tTest %d:\tShould stop at zero: %+v", failed, testID, snap)
			}
			t.Logf("\t%s\tTest %d:\tShould stop at zero.", success, testID)

			if err := q.Submit(1); !errors.Is(err, game.ErrAlreadyAnswered) {
				t.Fatalf("\t%s\tTest %d:\tShould reject a late answer, got %v.", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould reject a late answer.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen the question is answered before the countdown.", testID)
		{
			var rec recorder
			q, sched := newQuiz(t, &rec)
			q.Start()

			sched.Advance(3 * time.Second)
			if err := q.Submit(0); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould accept the answer: %s", failed, testID, err)
			}

			sched.Advance(time.Minute)
			snap := q.Snapshot()
			if snap.Remaining != 27 || len(snap.Answers) != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould freeze the countdown on answer: %+v", failed, testID, snap)
			}
			t.Logf("\t%s\tTest %d:\tShould freeze the countdown on answer.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen restarting a session.", testID)
		{
			var rec recorder
			q, sched := newQuiz(t, &rec)
			q.Start()
			sched.Advance(5 * time.Second)
			q.Start()
			q.Start()

			if sched.Live() != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould run a single countdown, got %d.", failed, testID, sched.Live())
			}
			t.Logf("\t%s\tTest %d:\tShould run a single countdown.", success, testID)

			sched.Advance(time.Second)
			if got := q.Snapshot().Remaining; got != 29 {
				t.Fatalf("\t%s\tTest %d:\tShould tick once per second, got %d.", failed, testID, got)
			}
			t.Logf("\t%s\tTest %d:\tShould tick once per second.", success, testID)

			q.Stop()
			if sched.Live() != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould leave no countdown after stop.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould leave no countdown after stop.", success, testID)
		}
	}
}

func TestScore(t *testing.T) {
	type table struct {
		name    string
		answers []int
		score   int
		badges  int
	}

	tt := []table{
		{name: "all-correct", answers: []int{1, 0, 1}, score: 30, badges: 2},
		{name: "two-correct", answers: []int{1, 0, 2}, score: 20, badges: 1},
		{name: "none", answers: []int{quiz.NoAnswer, 3, 3}, score: 0, badges: 0},
	}

	t.Log("Given the need to award points per correct answer.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen answering %v.", testID, tst.answers)
			{
				f := func(t *testing.T) {
					var rec recorder
					q, _ := newQuiz(t, &rec)
					q.Start()

					last := 0
					for _, a := range tst.answers {
						if err := q.Submit(a); err != nil {
							t.Fatalf("\t%s\tTest %d:\tShould accept answer %d: %s", failed, testID, a, err)
						}

						score := q.Snapshot().Score
						if score < last {
							t.Fatalf("\t%s\tTest %d:\tShould never decrease the score.", failed, testID)
						}
						last = score

						if err := q.Advance(); err != nil {
							t.Fatalf("\t%s\tTest %d:\tShould advance: %s", failed, testID, err)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould never decrease the score.", success, testID)

					snap := q.Snapshot()
					if snap.Score != tst.score {
						t.Fatalf("\t%s\tTest %d:\tShould score %d, got %d.", failed, testID, tst.score, snap.Score)
					}
					t.Logf("\t%s\tTest %d:\tShould score %d.", success, testID, tst.score)

					if len(snap.Badges) != tst.badges {
						t.Fatalf("\t%s\tTest %d:\tShould earn %d badges, got %v.", failed, testID, tst.badges, snap.Badges)
					}
					t.Logf("\t%s\tTest %d:\tShould earn %d badges.", success, testID, tst.badges)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func TestValidation(t *testing.T) {
	t.Log("Given the need to reject invalid quiz input.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the quiz is not started.", testID)
		{
			var rec recorder
			q, _ := newQuiz(t, &rec)

			if err := q.Submit(0); !errors.Is(err, game.ErrInactive) {
				t.Fatalf("\t%s\tTest %d:\tShould reject answers, got %v.", failed, testID, err)
			}
			if err := q.Advance(); !errors.Is(err, game.ErrInactive) {
				t.Fatalf("\t%s\tTest %d:\tShould reject advance, got %v.", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould reject input.", success, testID)

			if len(rec.notices) != 2 || rec.notices[0].Kind != game.KindInactive {
				t.Fatalf("\t%s\tTest %d:\tShould raise classified warnings, got %+v.", failed, testID, rec.notices)
			}
			t.Logf("\t%s\tTest %d:\tShould raise classified warnings.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen the input is out of order or range.", testID)
		{
			var rec recorder
			q, _ := newQuiz(t, &rec)
			q.Start()

			if err := q.Advance(); !errors.Is(err, game.ErrNotAnswered) {
				t.Fatalf("\t%s\tTest %d:\tShould reject advance before answering, got %v.", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould reject advance before answering.", success, testID)

			if err := q.Submit(4); game.KindOf(err) != game.KindOutOfRange {
				t.Fatalf("\t%s\tTest %d:\tShould reject an option out of range, got %v.", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould reject an option out of range.", success, testID)

			if snap := q.Snapshot(); snap.Revealed || len(snap.Answers) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould not change state on rejection.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not change state on rejection.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen constructing with a bad question.", testID)
		{
			qs := questions()
			qs[0].Correct = 4
			if _, err := quiz.New(qs, timer.NewManual(), game.Reporter{}); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould fail construction.", failed, testID)
			}
			if _, err := quiz.New(nil, timer.NewManual(), game.Reporter{}); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould fail construction without questions.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould fail construction.", success, testID)
		}
	}
}

func TestSnapshotHidesAnswer(t *testing.T) {
	t.Log("Given the need to hide the answer until it is revealed.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen viewing the current question.", testID)
		{
			var rec recorder
			q, _ := newQuiz(t, &rec)
			q.Start()

			if snap := q.Snapshot(); snap.Question == nil || snap.Question.Correct != nil || snap.Question.Explanation != "" {
				t.Fatalf("\t%s\tTest %d:\tShould hide the answer before submit.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould hide the answer before submit.", success, testID)

			q.Submit(2)
			snap := q.Snapshot()
			if snap.Question.Correct == nil || *snap.Question.Correct != 1 || snap.Question.Explanation != "b" {
				t.Fatalf("\t%s\tTest %d:\tShould reveal the answer after submit.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould reveal the answer after submit.", success, testID)
		}
	}
}

func TestBadges(t *testing.T) {
	tt := []struct {
		percentage int
		badges     string
	}{
		{100, "crypto-expert,knowledge-seeker"},
		{80, "crypto-expert,knowledge-seeker"},
		{67, "knowledge-seeker"},
		{60, "knowledge-seeker"},
		{33, ""},
	}

	t.Log("Given the need to name the badges earned for a percentage.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen finishing with %d%%.", testID, tst.percentage)
			{
				got := strings.Join(quiz.Badges(tst.percentage), ",")
				if got != tst.badges {
					t.Fatalf("\t%s\tTest %d:\tShould earn %q, got %q.", failed, testID, tst.badges, got)
				}
				t.Logf("\t%s\tTest %d:\tShould earn %q.", success, testID, tst.badges)
			}
		}
	}
}
