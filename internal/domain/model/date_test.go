package model_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/avagyan/daygrid/internal/domain/model"
)

func TestDate(t *testing.T) {
	Convey("Given the calendar Date type", t, func() {
		Convey("When parsing an ISO string", func() {
			d, err := model.ParseDate("2022-01-05")

			Convey("Then it should round-trip through String", func() {
				So(err, ShouldBeNil)
				So(d.String(), ShouldEqual, "2022-01-05")
				So(d.Year, ShouldEqual, 2022)
				So(d.Month, ShouldEqual, time.January)
				So(d.Day, ShouldEqual, 5)
			})
		})

		Convey("When parsing garbage", func() {
			_, err := model.ParseDate("05.01.2022")

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When truncating a timestamp", func() {
			ts := time.Date(2022, time.March, 9, 23, 59, 59, 0, time.UTC)

			Convey("Then only the calendar day survives", func() {
				So(model.DateOf(ts), ShouldResemble, model.Date{Year: 2022, Month: time.March, Day: 9})
			})
		})

		Convey("When comparing dates", func() {
			a := model.Date{Year: 2021, Month: time.December, Day: 31}
			b := model.Date{Year: 2022, Month: time.January, Day: 1}

			Convey("Then ordering should follow the calendar", func() {
				So(a.Before(b), ShouldBeTrue)
				So(b.After(a), ShouldBeTrue)
				So(a.Before(a), ShouldBeFalse)
			})

			Convey("And Next should roll over month and year boundaries", func() {
				So(a.Next(), ShouldResemble, b)
			})
		})

		Convey("When checking the zero value", func() {
			So(model.Date{}.IsZero(), ShouldBeTrue)
			So(model.Date{Year: 2022, Month: time.January, Day: 1}.IsZero(), ShouldBeFalse)
		})
	})
}
