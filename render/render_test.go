package render

import (
	"testing"

	"github.com/elliotcourant/schedules"
	"github.com/stretchr/testify/require"
)

func TestTeX(t *testing.T) {
	require.Equal(t, "$R_{1}(A)$", TeX(schedules.Read(1, "A")))
	require.Equal(t, "$W_{2}(X)$", TeX(schedules.Write(2, "X")))
	require.Equal(t, "$\\text{Commit}_{1}$", TeX(schedules.Commit(1)))
	require.Equal(t, "$\\text{Abort}_{2}$", TeX(schedules.Abort(2)))

	require.Panics(t, func() {
		TeX(schedules.Action{Transaction: 1})
	})
}

func TestTable(t *testing.T) {
	s := schedules.Schedule{
		schedules.Read(1, "A"),
		schedules.Write(2, "A"),
		schedules.Commit(1),
	}
	require.Equal(t, "\\begin{tabular}{|c|c|}\n"+
		"\\hline\n"+
		"$T_1$&$T_2$\\\\\\hline\n"+
		"$R_{1}(A)$&\\\\\\hline\n"+
		"&$W_{2}(A)$\\\\\\hline\n"+
		"$\\text{Commit}_{1}$&\\\\\\hline\n"+
		"\\end{tabular}\n", Table(s))
}

func TestTableSortsColumnsByID(t *testing.T) {
	s := schedules.Schedule{
		schedules.Write(2, "A"),
		schedules.Read(1, "A"),
	}
	require.Equal(t, "\\begin{tabular}{|c|c|}\n"+
		"\\hline\n"+
		"$T_1$&$T_2$\\\\\\hline\n"+
		"&$W_{2}(A)$\\\\\\hline\n"+
		"$R_{1}(A)$&\\\\\\hline\n"+
		"\\end{tabular}\n", Table(s))
}

func TestDOT(t *testing.T) {
	s := schedules.Schedule{
		schedules.Read(1, "X"),
		schedules.Write(2, "X"),
		schedules.Commit(1),
		schedules.Commit(2),
	}
	marshaled, err := DOT(schedules.ConflictGraph(s))
	require.NoError(t, err)

	out := string(marshaled)
	require.Contains(t, out, "T1")
	require.Contains(t, out, "T2")
	require.Contains(t, out, "T1 -> T2")
}
