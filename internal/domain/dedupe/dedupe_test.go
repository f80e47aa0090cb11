package dedupe_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/avagyan/daygrid/internal/domain/dedupe"
	"github.com/avagyan/daygrid/internal/domain/model"
	"github.com/avagyan/daygrid/internal/table"
)

func day(d int) model.Date {
	return model.Date{Year: 2022, Month: time.March, Day: d}
}

func TestByKey(t *testing.T) {
	Convey("Given a table with repeated dates from overlapping snapshots", t, func() {
		in := table.New("date", "steps")
		in.Append(table.Row{"date": day(1), "steps": 100})
		in.Append(table.Row{"date": day(2), "steps": 200})
		in.Append(table.Row{"date": day(1), "steps": 150})

		Convey("When folding with the default policy", func() {
			out := dedupe.ByKey(in, "date")

			Convey("Then the last row per date wins", func() {
				So(out.Len(), ShouldEqual, 2)
				So(out.Rows()[0]["steps"], ShouldEqual, 150)
				So(out.Rows()[1]["steps"], ShouldEqual, 200)
			})

			Convey("And row order follows first appearance", func() {
				So(out.Rows()[0]["date"], ShouldResemble, day(1))
				So(out.Rows()[1]["date"], ShouldResemble, day(2))
			})
		})

		Convey("When folding with first-wins", func() {
			out := dedupe.ByKey(in, "date", dedupe.WithPolicy(dedupe.FirstWins))

			Convey("Then the earlier snapshot survives", func() {
				So(out.Len(), ShouldEqual, 2)
				So(out.Rows()[0]["steps"], ShouldEqual, 100)
			})
		})
	})

	Convey("Given an empty table", t, func() {
		in := table.New("date")

		Convey("When folding", func() {
			out := dedupe.ByKey(in, "date")

			Convey("Then the result is empty with the same columns", func() {
				So(out.Empty(), ShouldBeTrue)
				So(out.Columns(), ShouldResemble, []string{"date"})
			})
		})
	})
}
