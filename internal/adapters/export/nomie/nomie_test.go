package nomie_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/avagyan/daygrid/internal/adapters/export/nomie"
)

func writeExport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseNote(t *testing.T) {
	Convey("Given free-text notes", t, func() {
		Convey("When the note carries a tracker marker", func() {
			tracker, value := nomie.ParseNote("after dinner #beer(2) with friends")

			Convey("Then the tracker and value come back", func() {
				So(*tracker, ShouldEqual, "beer")
				So(*value, ShouldEqual, 2.0)
			})
		})

		Convey("When the value is fractional", func() {
			tracker, value := nomie.ParseNote("#wine(1.5)")

			So(*tracker, ShouldEqual, "wine")
			So(*value, ShouldEqual, 1.5)
		})

		Convey("When the note has no marker", func() {
			tracker, value := nomie.ParseNote("slept badly, skipped the gym")

			Convey("Then both results are nil", func() {
				So(tracker, ShouldBeNil)
				So(value, ShouldBeNil)
			})
		})

		Convey("When the marker has no parenthesized value", func() {
			tracker, value := nomie.ParseNote("#beer without a count")

			So(tracker, ShouldBeNil)
			So(value, ShouldBeNil)
		})
	})
}

func TestEmojiFor(t *testing.T) {
	Convey("Given tracker names", t, func() {
		Convey("When the tracker is in the lookup table", func() {
			So(*nomie.EmojiFor("beer"), ShouldEqual, "\U0001F37A")
			So(*nomie.EmojiFor("cigarette"), ShouldEqual, "\U0001F6AC")
		})

		Convey("When the tracker is unknown", func() {
			So(nomie.EmojiFor("meditation"), ShouldBeNil)
		})
	})
}

func TestEventsJSON(t *testing.T) {
	Convey("Given an n3 JSON export", t, func() {
		// 1641326400000 ms is 2022-01-04T20:00:00Z.
		path := writeExport(t, "nomie.json", `[
			{"start": 1641326400000, "note": "#beer(2)"},
			{"start": 1641326400000, "note": "#pushups(30)"},
			{"start": 1641326400000, "note": "plain note"}
		]`)

		Convey("When reading events", func() {
			events, err := nomie.NewReader(path).Events()
			So(err, ShouldBeNil)
			So(len(events), ShouldEqual, 3)

			Convey("Then recognized trackers get their symbol", func() {
				So(*events[0].Tracker, ShouldEqual, "beer")
				So(*events[0].Value, ShouldEqual, 2.0)
				So(*events[0].Emoji, ShouldEqual, "\U0001F37A")
			})

			Convey("And unrecognized trackers keep a nil symbol", func() {
				So(*events[1].Tracker, ShouldEqual, "pushups")
				So(events[1].Emoji, ShouldBeNil)
			})

			Convey("And markerless notes carry nil tracker and value", func() {
				So(events[2].Tracker, ShouldBeNil)
				So(events[2].Value, ShouldBeNil)
				So(events[2].Note, ShouldEqual, "plain note")
			})

			Convey("And epoch milliseconds decode to UTC", func() {
				So(events[0].Start.UTC().Hour(), ShouldEqual, 20)
			})
		})
	})

	Convey("Given a JSON export with a text start", t, func() {
		path := writeExport(t, "nomie.json", `[{"start": "2022-01-04T20:00:00", "note": ""}]`)

		Convey("When reading events", func() {
			_, err := nomie.NewReader(path).Events()

			Convey("Then it is an error, not a format fallback", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestEventsCSV(t *testing.T) {
	Convey("Given a legacy CSV export", t, func() {
		path := writeExport(t, "nomie.csv",
			"start,tracker,emoji,value,note\n"+
				"2022-01-04T20:00:00,beer,\U0001F37A,2,evening\n"+
				"2022-01-05 09:00:00,,,,\n")

		Convey("When reading events", func() {
			events, err := nomie.NewReader(path).Events()
			So(err, ShouldBeNil)

			Convey("Then the columns pass through verbatim", func() {
				So(len(events), ShouldEqual, 2)
				So(*events[0].Tracker, ShouldEqual, "beer")
				So(*events[0].Emoji, ShouldEqual, "\U0001F37A")
				So(*events[0].Value, ShouldEqual, 2.0)
			})

			Convey("And empty cells stay nil", func() {
				So(events[1].Tracker, ShouldBeNil)
				So(events[1].Emoji, ShouldBeNil)
				So(events[1].Value, ShouldBeNil)
			})
		})
	})
}

func TestEventsDispatch(t *testing.T) {
	Convey("Given an absent export file", t, func() {
		Convey("When reading", func() {
			events, err := nomie.NewReader(filepath.Join(t.TempDir(), "nomie.json")).Events()

			Convey("Then the result is empty without error", func() {
				So(err, ShouldBeNil)
				So(events, ShouldBeEmpty)
			})
		})
	})

	Convey("Given an export with an unrecognized extension", t, func() {
		path := writeExport(t, "nomie.txt", "whatever")

		Convey("When reading", func() {
			_, err := nomie.NewReader(path).Events()

			Convey("Then the format error surfaces", func() {
				So(err, ShouldWrap, nomie.ErrUnknownFormat)
			})
		})
	})
}
