package framework

import (
	"os"
	"testing"

	"github.com/cs-au-dk/monotone/analysis/lattice"
	"github.com/cs-au-dk/monotone/analysis/pgraph"
	"github.com/cs-au-dk/monotone/analysis/solver"
	"github.com/cs-au-dk/monotone/testutil"
	"github.com/cs-au-dk/monotone/utils"
	"github.com/cs-au-dk/monotone/utils/worklist"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sebdah/goldie/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// Actions of a tiny imperative language.
type (
	assign struct {
		Var string
		Val int
	}
	inc  struct{ Var string }
	skip struct{}
	decl struct{ Var string }
)

func newGraph(t *testing.T, n int) *pgraph.ProgramGraph[any] {
	t.Helper()
	g := pgraph.New[any]()
	for i := 0; i < n; i++ {
		g.NewState()
	}
	g.SetInitialState(0)
	g.SetFinalState(n - 1)
	return g
}

func edge(t *testing.T, g *pgraph.ProgramGraph[any], from, to int, action any) {
	t.Helper()
	require.NoError(t, g.AddTransition(from, to, action))
}

func TestTwoStateTop(t *testing.T) {
	g := newGraph(t, 2)
	edge(t, g, 0, 1, decl{"x"})

	alwaysTop := Transfer[any, lattice.TwoElement](func(any, lattice.TwoElement) lattice.TwoElement {
		return lattice.TwoElementTop
	})

	cs, err := New[any, lattice.TwoElement](lattice.TwoElementTop, alwaysTop, g, Forward).ConstraintSystem()
	require.NoError(t, err)
	require.Equal(t, 2, cs.NumberOfVariables())

	bot := lattice.TwoElementBot
	testutil.AssertAllValues(t, cs, bot, bot)

	testutil.AssertLatticeEq(t, lattice.TwoElementTop, cs.UpdateValueOf(0))
	testutil.AssertLatticeEq(t, lattice.TwoElementTop, cs.UpdateValueOf(1))

	cs.Reset()
	testutil.AssertAllValues(t, cs, bot, bot)
	solver.Solve[lattice.TwoElement](worklist.Empty[int](), cs)
	top := lattice.TwoElementTop
	testutil.AssertAllValues(t, cs, top, top)
}

func TestDeclarationWithoutSolving(t *testing.T) {
	stf := testutil.MakeSignState("x")
	g := newGraph(t, 2)
	edge(t, g, 0, 1, decl{"x"})

	declare := OfType[any](func(d decl, s testutil.SignState) testutil.SignState {
		return s.Update(d.Var, testutil.AnySign())
	})

	cs, err := New[any, testutil.SignState](stf, declare, g, Forward).ConstraintSystem()
	require.NoError(t, err)

	assert.True(t, cs.ValueOf(0).IsBot())
	assert.True(t, cs.ValueOf(1).IsBot())
	testutil.AssertLatticeEq(t, stf.Update("x", testutil.AnySign()), cs.UpdateValueOf(1))
}

func incSigns(s testutil.Signs) testutil.Signs {
	res := testutil.MakeSigns()
	s.ForEach(func(sign testutil.Sign) {
		switch sign {
		case testutil.Neg:
			res = res.Add(testutil.Neg).Add(testutil.Zero)
		default:
			res = res.Add(testutil.Pos)
		}
	})
	return res
}

func signsAnalysis() Dispatcher[any, testutil.SignState] {
	return Dispatch(
		OfType[any](func(a assign, s testutil.SignState) testutil.SignState {
			return s.Update(a.Var, testutil.MakeSigns(testutil.SignOf(a.Val)))
		}),
		OfType[any](func(a inc, s testutil.SignState) testutil.SignState {
			return s.Update(a.Var, incSigns(s.Get(a.Var)))
		}),
		OfType[any](func(_ skip, s testutil.SignState) testutil.SignState {
			return s
		}),
	)
}

// x := 0; while (...) { x++ }
//
//	q0 -[x := 0]-> q1 -[x++]-> q2 -[skip]-> q1 -[skip]-> q3
func loopProgram(t *testing.T) *pgraph.ProgramGraph[any] {
	g := newGraph(t, 4)
	edge(t, g, 0, 1, assign{"x", 0})
	edge(t, g, 1, 2, inc{"x"})
	edge(t, g, 2, 1, skip{})
	edge(t, g, 1, 3, skip{})
	return g
}

func TestSignsAnalysis(t *testing.T) {
	stf := testutil.MakeSignState("x")
	signs := func(ss ...testutil.Sign) testutil.SignState {
		return stf.Update("x", testutil.MakeSigns(ss...))
	}
	Z, P := testutil.Zero, testutil.Pos

	for _, wl := range utils.Worklists {
		t.Run(wl.Flag, func(t *testing.T) {
			opts := utils.DefaultOptions()
			opts.Worklist = wl.Flag
			opts.CheckMonotone = true

			res, err := New[any, testutil.SignState](stf, signsAnalysis(), loopProgram(t), Forward).Solve(opts)
			require.NoError(t, err)
			t.Logf("%s: %d extractions", wl.Flag, res.Stats.Extractions)

			testutil.AssertAllValues(t, res.System,
				stf,
				signs(Z, P),
				signs(P),
				signs(Z, P),
			)
			testutil.AssertLatticeEq(t, signs(P), res.ValueAt(2))
			assert.Len(t, res.Values(), 4)
		})
	}
}

func TestDispatcherFirstMatchWins(t *testing.T) {
	toTop := When(func(any) bool { return true }, func(any, lattice.TwoElement) lattice.TwoElement {
		return lattice.TwoElementTop
	})
	toBot := Transfer[any, lattice.TwoElement](func(any, lattice.TwoElement) lattice.TwoElement {
		return lattice.TwoElementBot
	})

	d := Dispatch[any, lattice.TwoElement](toTop, toBot)
	assert.Equal(t, lattice.TwoElementTop, d.Apply(skip{}, lattice.TwoElementBot))
	d = Dispatch[any, lattice.TwoElement](toBot, toTop)
	assert.Equal(t, lattice.TwoElementBot, d.Apply(skip{}, lattice.TwoElementTop))

	empty := Dispatch[any, lattice.TwoElement]()
	assert.False(t, empty.ApplicableTo(skip{}))
	assert.Panics(t, func() { empty.Apply(skip{}, lattice.TwoElementBot) })
}

func TestDispatchFailure(t *testing.T) {
	g := loopProgram(t)
	edge(t, g, 3, 0, decl{"y"})

	_, err := New[any, testutil.SignState](testutil.MakeSignState("x"), signsAnalysis(), g, Forward).ConstraintSystem()
	var de *DispatchError
	if assert.True(t, errors.As(err, &de), "got %v", err) {
		assert.Equal(t, 3, de.From)
		assert.Equal(t, 0, de.To)
		assert.Equal(t, decl{"y"}, de.Action)
	}

	_, err = New[any, testutil.SignState](testutil.MakeSignState("x"), signsAnalysis(), g, Backward).Solve(utils.DefaultOptions())
	if assert.True(t, errors.As(err, &de), "got %v", err) {
		assert.Equal(t, 3, de.From, "edges are reported as in the program graph")
		assert.Equal(t, 0, de.To)
	}
}

func TestInvalidGraph(t *testing.T) {
	g := loopProgram(t)
	edge(t, g, 2, 2, skip{})

	for _, dir := range []Direction{Forward, Backward} {
		_, err := New[any, testutil.SignState](testutil.MakeSignState("x"), signsAnalysis(), g, dir).ConstraintSystem()
		assert.True(t, errors.Is(err, ErrInvalidGraph), "got %v", err)

		var sl *pgraph.SelfLoopError
		if assert.True(t, errors.As(err, &sl)) {
			assert.Equal(t, 2, sl.State)
		}
	}
}

func TestEmptyGraph(t *testing.T) {
	res, err := New[any, lattice.TwoElement](lattice.TwoElementTop, Dispatch[any, lattice.TwoElement](), pgraph.New[any](), Forward).
		Solve(utils.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Values())
	assert.Equal(t, 0, res.Stats.Extractions)
}

type (
	def struct {
		Var  string
		Uses []string
	}
	output struct{ Var string }
)

type live = lattice.PowerSet[string]

func liveness() Dispatcher[any, live] {
	return Dispatch(
		OfType[any](func(d *def, s live) live {
			s = s.Remove(d.Var)
			for _, u := range d.Uses {
				s = s.Add(u)
			}
			return s
		}),
		OfType[any](func(p output, s live) live {
			return s.Add(p.Var)
		}),
	)
}

// x := 1; y := x; z := 2; output y
func straightLine(t *testing.T) *pgraph.ProgramGraph[any] {
	g := newGraph(t, 5)
	edge(t, g, 0, 1, &def{"x", nil})
	edge(t, g, 1, 2, &def{"y", []string{"x"}})
	edge(t, g, 2, 3, &def{"z", nil})
	edge(t, g, 3, 4, output{"y"})
	return g
}

func TestLiveness(t *testing.T) {
	f := New[any, lattice.PowerSet[string]](lattice.MakePowerSet[string](), liveness(), straightLine(t), Backward)
	rev := f.AnalysisGraph()
	assert.Equal(t, 4, rev.InitialState())
	assert.Equal(t, 0, rev.FinalState())

	res, err := f.Solve(utils.DefaultOptions())
	require.NoError(t, err)

	testutil.AssertAllValues(t, res.System,
		lattice.MakePowerSet[string](),
		lattice.MakePowerSet("x"),
		lattice.MakePowerSet("y"),
		lattice.MakePowerSet("y"),
		lattice.MakePowerSet[string](),
	)

	goldie.New(t).Assert(t, t.Name(), []byte(res.String()))
}

func TestSolveOptions(t *testing.T) {
	f := New[any, testutil.SignState](testutil.MakeSignState("x"), signsAnalysis(), loopProgram(t), Forward)

	opts := utils.DefaultOptions()
	opts.Worklist = "random"
	_, err := f.Solve(opts)
	assert.Error(t, err)

	opts = utils.DefaultOptions()
	opts.MaxExtractions = 2
	_, err = f.Solve(opts)
	assert.True(t, errors.Is(err, solver.ErrUnsolved), "got %v", err)
}

func TestAssemblyLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	f := New[any, testutil.SignState](testutil.MakeSignState("x"), signsAnalysis(), loopProgram(t), Forward)
	f.Log = logger
	_, err := f.ConstraintSystem()
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Assembled constraint system", entry.Message)
	assert.Equal(t, 4, entry.Data["transitions"])
	assert.Equal(t, 1, entry.Data["loops"])
}

func TestAssemblyLoggingDisabled(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.InfoLevel)

	f := New[any, testutil.SignState](testutil.MakeSignState("x"), signsAnalysis(), loopProgram(t), Forward)
	f.Log = logger
	_, err := f.ConstraintSystem()
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}
