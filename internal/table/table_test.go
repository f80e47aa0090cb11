package table_test

import (
	"bytes"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/avagyan/daygrid/internal/domain/model"
	"github.com/avagyan/daygrid/internal/table"
)

func day(d int) model.Date {
	return model.Date{Year: 2022, Month: time.February, Day: d}
}

func TestJoins(t *testing.T) {
	Convey("Given two per-day tables with partly overlapping dates", t, func() {
		steps := table.New("date", "steps")
		steps.Append(table.Row{"date": day(1), "steps": 4000})
		steps.Append(table.Row{"date": day(2), "steps": 9000})

		sleep := table.New("date", "sleep_h")
		sleep.Append(table.Row{"date": day(2), "sleep_h": 7.5})
		sleep.Append(table.Row{"date": day(3), "sleep_h": 6.0})

		Convey("When outer-joining on date", func() {
			out, err := table.OuterJoin(steps, sleep, "date")
			So(err, ShouldBeNil)

			Convey("Then every date from either side appears exactly once", func() {
				So(out.Len(), ShouldEqual, 3)
				So(out.Columns(), ShouldResemble, []string{"date", "steps", "sleep_h"})
			})

			Convey("And one-sided dates carry nil cells for the other side", func() {
				out.SortBy("date")
				rows := out.Rows()
				So(rows[0]["steps"], ShouldEqual, 4000)
				So(rows[0]["sleep_h"], ShouldBeNil)
				So(rows[1]["steps"], ShouldEqual, 9000)
				So(rows[1]["sleep_h"], ShouldEqual, 7.5)
				So(rows[2]["steps"], ShouldBeNil)
				So(rows[2]["sleep_h"], ShouldEqual, 6.0)
			})
		})

		Convey("When left-joining sleep onto a calendar", func() {
			calendar := table.New("date")
			for d := day(1); !d.After(day(4)); d = d.Next() {
				calendar.Append(table.Row{"date": d})
			}
			out, err := table.LeftJoin(calendar, sleep, "date")
			So(err, ShouldBeNil)

			Convey("Then all calendar rows survive", func() {
				So(out.Len(), ShouldEqual, 4)
				So(out.Rows()[0]["sleep_h"], ShouldBeNil)
				So(out.Rows()[1]["sleep_h"], ShouldEqual, 7.5)
				So(out.Rows()[3]["sleep_h"], ShouldBeNil)
			})
		})

		Convey("When the right side repeats a key", func() {
			dup := table.New("date", "sleep_h")
			dup.Append(table.Row{"date": day(1), "sleep_h": 5.0})
			dup.Append(table.Row{"date": day(1), "sleep_h": 8.0})
			out, err := table.OuterJoin(steps, dup, "date")
			So(err, ShouldBeNil)

			Convey("Then its last row wins", func() {
				So(out.Len(), ShouldEqual, 2)
				So(out.Rows()[0]["sleep_h"], ShouldEqual, 8.0)
			})
		})

		Convey("When the join key is missing from a non-empty side", func() {
			bad := table.New("when")
			bad.Append(table.Row{"when": day(1)})
			_, err := table.OuterJoin(steps, bad, "date")

			Convey("Then the join fails with the sentinel", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "join key column")
			})
		})
	})
}

func TestWriteTSV(t *testing.T) {
	Convey("Given a table with every supported cell kind", t, func() {
		tab := table.New("date", "start", "label", "count", "ratio")
		tab.Append(table.Row{
			"date":  day(5),
			"start": time.Date(2022, time.February, 5, 23, 30, 0, 0, time.UTC),
			"label": "run",
			"count": 3,
			"ratio": 0.5,
		})
		tab.Append(table.Row{
			"date":  day(6),
			"start": nil,
			"label": nil,
			"count": nil,
			"ratio": nil,
		})

		Convey("When encoding as TSV", func() {
			var buf bytes.Buffer
			err := table.WriteTSV(&buf, tab)
			So(err, ShouldBeNil)

			Convey("Then dates are ISO, nulls are empty fields", func() {
				want := "date\tstart\tlabel\tcount\tratio\n" +
					"2022-02-05\t2022-02-05 23:30:00\trun\t3\t0.5\n" +
					"2022-02-06\t\t\t\t\n"
				So(buf.String(), ShouldEqual, want)
			})

			Convey("And encoding twice yields identical bytes", func() {
				var again bytes.Buffer
				So(table.WriteTSV(&again, tab), ShouldBeNil)
				So(again.String(), ShouldEqual, buf.String())
			})
		})
	})
}
