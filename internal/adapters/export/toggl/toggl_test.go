package toggl_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/avagyan/daygrid/internal/adapters/export/toggl"
)

func TestEntries(t *testing.T) {
	Convey("Given two yearly export files and an unrelated CSV", t, func() {
		dir := t.TempDir()
		write := func(name, content string) {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		write("Toggl_2021.csv", "Client,Start date,Duration\nAcme,2021-12-30,02:30:00\n")
		write("Toggl_2022.csv", "Client,Start date,Duration\n,2022-01-04,08:00:00\nAcme,2022-01-04,01:15:00\n")
		write("notes.csv", "Client,Start date,Duration\nAcme,2022-01-05,01:00:00\n")

		Convey("When reading entries", func() {
			entries, err := toggl.NewReader(dir).Entries()
			So(err, ShouldBeNil)

			Convey("Then only Toggl-prefixed files contribute, oldest file first", func() {
				So(len(entries), ShouldEqual, 3)
				So(entries[0].Date.String(), ShouldEqual, "2021-12-30")
				So(entries[0].Client, ShouldEqual, "Acme")
			})

			Convey("And an empty client cell stays empty", func() {
				So(entries[1].Client, ShouldEqual, "")
				So(entries[1].Hours.Equal(decimal.NewFromInt(8)), ShouldBeTrue)
			})
		})
	})

	Convey("Given no export directory", t, func() {
		Convey("When reading", func() {
			entries, err := toggl.NewReader(filepath.Join(t.TempDir(), "missing")).Entries()

			Convey("Then the result is empty without error", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a file missing the duration column", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "Toggl_2022.csv")
		So(os.WriteFile(path, []byte("Client,Start date\nAcme,2022-01-04\n"), 0o644), ShouldBeNil)

		Convey("When reading", func() {
			_, err := toggl.NewReader(dir).Entries()

			Convey("Then the missing column is reported", func() {
				So(err, ShouldWrap, toggl.ErrMissingColumn)
			})
		})
	})
}

func TestParseDuration(t *testing.T) {
	Convey("Given HH:MM:SS durations", t, func() {
		Convey("When converting to hours", func() {
			cases := map[string]string{
				"02:30:00": "2.5",
				"00:15:00": "0.25",
				"26:30:00": "26.5",
				"00:00:36": "0.01",
			}
			for in, want := range cases {
				got, err := toggl.ParseDuration(in)
				So(err, ShouldBeNil)
				So(got.Equal(decimal.RequireFromString(want)), ShouldBeTrue)
			}
		})

		Convey("When the text is not a duration", func() {
			for _, in := range []string{"", "2:30", "xx:00:00", "-1:00:00"} {
				_, err := toggl.ParseDuration(in)
				So(err, ShouldWrap, toggl.ErrBadDuration)
			}
		})
	})
}
