package schedules

// Shared schedule fixtures. The exercise schedules are the classic textbook
// drills, the numbered schedules cover the structural corner cases: missing
// terminations, aborts, repeated objects, and a single transaction.
var (
	schedule1 = Schedule{
		Read(1, "A"), Write(1, "A"),
		Read(2, "B"), Write(2, "B"),
		Read(1, "C"), Write(1, "C"),
	}

	schedule2 = Schedule{
		Read(1, "A"), Write(1, "A"),
		Read(2, "B"), Write(2, "B"),
		Read(1, "C"), Write(1, "C"),
		Commit(1), Commit(2),
	}

	schedule3 = Schedule{
		Read(1, "A"), Write(1, "A"),
		Read(2, "B"), Write(2, "B"),
		Read(1, "C"), Write(1, "C"),
		Abort(1), Abort(2),
	}

	schedule4 = Schedule{
		Read(1, "A"), Write(1, "A"),
		Read(2, "A"), Write(2, "A"),
		Read(1, "B"), Write(1, "B"),
		Read(1, "B"), Write(1, "B"),
		Commit(1), Commit(2),
	}

	schedule5 = Schedule{
		Read(1, "A"),
		Write(2, "A"), Commit(2),
		Write(1, "A"), Commit(1),
		Write(3, "A"), Commit(3),
	}

	schedule6 = Schedule{
		Write(1, "A"), Read(1, "A"), Commit(1),
	}

	schedule7 = Schedule{
		Write(2, "A"), Abort(2),
		Read(1, "A"), Commit(1),
	}

	exercise1  = Schedule{Read(1, "X"), Read(2, "X"), Write(1, "X"), Write(2, "X")}
	exercise2  = Schedule{Write(1, "X"), Read(2, "Y"), Read(1, "Y"), Read(2, "X")}
	exercise3  = Schedule{Read(1, "X"), Read(2, "Y"), Write(3, "X"), Read(2, "X"), Read(1, "Y")}
	exercise4  = Schedule{Read(1, "X"), Read(1, "Y"), Write(1, "X"), Read(2, "Y"), Write(3, "Y"), Write(1, "X"), Read(2, "Y")}
	exercise5  = Schedule{Read(1, "X"), Write(2, "X"), Write(1, "X"), Abort(2), Commit(1)}
	exercise6  = Schedule{Read(1, "X"), Write(2, "X"), Write(1, "X"), Commit(2), Commit(1)}
	exercise7  = Schedule{Write(1, "X"), Read(2, "X"), Write(1, "X"), Abort(2), Commit(1)}
	exercise8  = Schedule{Write(1, "X"), Read(2, "X"), Write(1, "X"), Commit(2), Commit(1)}
	exercise9  = Schedule{Write(1, "X"), Read(2, "X"), Write(1, "X"), Commit(2), Abort(1)}
	exercise10 = Schedule{Read(2, "X"), Write(3, "X"), Commit(3), Write(1, "Y"), Commit(1), Read(2, "Y"), Write(2, "Z"), Commit(2)}
	exercise11 = Schedule{Read(1, "X"), Write(2, "X"), Commit(2), Write(1, "X"), Commit(1), Read(3, "X"), Commit(3)}
	exercise12 = Schedule{Read(1, "X"), Write(2, "X"), Write(1, "X"), Read(3, "X"), Commit(1), Commit(2), Commit(3)}
)

// corpus is every fixture, used by the property style tests.
var corpus = []Schedule{
	schedule1, schedule2, schedule3, schedule4, schedule5, schedule6, schedule7,
	exercise1, exercise2, exercise3, exercise4, exercise5, exercise6,
	exercise7, exercise8, exercise9, exercise10, exercise11, exercise12,
}
