package category_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/avagyan/daygrid/internal/domain/category"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestBuckets(t *testing.T) {
	Convey("Given the step thresholds", t, func() {
		Convey("When bucketing counts", func() {
			So(*category.Steps(intPtr(0)), ShouldEqual, 1)
			So(*category.Steps(intPtr(5000)), ShouldEqual, 1)
			So(*category.Steps(intPtr(5001)), ShouldEqual, 2)
			So(*category.Steps(intPtr(10000)), ShouldEqual, 2)
			So(*category.Steps(intPtr(10001)), ShouldEqual, 3)
		})

		Convey("When the count is missing", func() {
			Convey("Then the bucket is nil, not zero", func() {
				So(category.Steps(nil), ShouldBeNil)
			})
		})
	})

	Convey("Given the sleep thresholds", t, func() {
		So(*category.SleepHours(floatPtr(6.9)), ShouldEqual, 1)
		So(*category.SleepHours(floatPtr(7.0)), ShouldEqual, 2)
		So(*category.SleepHours(floatPtr(8.0)), ShouldEqual, 3)
		So(category.SleepHours(nil), ShouldBeNil)
	})

	Convey("Given the activity-count thresholds", t, func() {
		So(*category.Activities(intPtr(0)), ShouldEqual, 1)
		So(*category.Activities(intPtr(1)), ShouldEqual, 2)
		So(*category.Activities(intPtr(2)), ShouldEqual, 2)
		So(*category.Activities(intPtr(3)), ShouldEqual, 3)
		So(category.Activities(nil), ShouldBeNil)
	})

	Convey("Given the stress thresholds", t, func() {
		So(*category.Stress(floatPtr(25)), ShouldEqual, 1)
		So(*category.Stress(floatPtr(40)), ShouldEqual, 2)
		So(*category.Stress(floatPtr(60)), ShouldEqual, 3)
		So(*category.Stress(floatPtr(61)), ShouldEqual, 4)
		So(category.Stress(nil), ShouldBeNil)
	})

	Convey("Given the business-hours thresholds", t, func() {
		So(*category.BusinessHours(floatPtr(0.5)), ShouldEqual, 1)
		So(*category.BusinessHours(floatPtr(1.0)), ShouldEqual, 2)
		So(*category.BusinessHours(floatPtr(8.0)), ShouldEqual, 2)
		So(*category.BusinessHours(floatPtr(9.5)), ShouldEqual, 3)
		So(*category.BusinessHours(floatPtr(12.0)), ShouldEqual, 4)
		So(category.BusinessHours(nil), ShouldBeNil)

		Convey("And a measured zero is bucketed, not dropped", func() {
			So(category.BusinessHours(floatPtr(0)), ShouldNotBeNil)
			So(*category.BusinessHours(floatPtr(0)), ShouldEqual, 1)
		})
	})

	Convey("Given habit limits", t, func() {
		Convey("When using the defaults", func() {
			limits := category.NewHabitLimits()

			So(*category.Habit(intPtr(1), limits), ShouldEqual, 1)
			So(*category.Habit(intPtr(3), limits), ShouldEqual, 2)
			So(*category.Habit(intPtr(4), limits), ShouldEqual, 3)
			So(category.Habit(nil, limits), ShouldBeNil)
		})

		Convey("When the caller tunes the thresholds", func() {
			limits := category.NewHabitLimits(
				category.WithGoodLimit(2),
				category.WithOkLimit(5),
			)

			So(*category.Habit(intPtr(2), limits), ShouldEqual, 1)
			So(*category.Habit(intPtr(5), limits), ShouldEqual, 2)
			So(*category.Habit(intPtr(6), limits), ShouldEqual, 3)
		})

		Convey("When an option is out of range", func() {
			limits := category.NewHabitLimits(category.WithGoodLimit(0))

			Convey("Then the default survives", func() {
				So(limits.Good, ShouldEqual, 1)
			})
		})
	})
}
