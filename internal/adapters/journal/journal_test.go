package journal_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/pathway/internal/adapters/journal"
	"github.com/okian/pathway/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func readEntries(t *testing.T, path string) []journal.Entry {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	var entries []journal.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatalf("decode journal: %v", err)
	}
	return entries
}

func TestFileJournal(t *testing.T) {
	Convey("Given a started file journal", t, func() {
		path := filepath.Join(t.TempDir(), "inputs.json")
		j := journal.NewFileJournal(journal.WithPath(path))
		j.Start(context.Background())

		Convey("When recording entries", func() {
			ok := j.Record(context.Background(), journal.Entry{
				ID:            "a",
				TargetRole:    "Backend Developer",
				CurrentSkills: []string{"java", "sql"},
				Timestamp:     "2026-01-02T03:04:05Z",
			})
			So(ok, ShouldBeTrue)
			So(j.Record(context.Background(), journal.Entry{ID: "b", TargetRole: "Data Analyst"}), ShouldBeTrue)
			So(j.Close(), ShouldBeNil)

			Convey("Then both entries are appended in order", func() {
				entries := readEntries(t, path)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].ID, ShouldEqual, "a")
				So(entries[0].CurrentSkills, ShouldResemble, []string{"java", "sql"})
				So(entries[1].TargetRole, ShouldEqual, "Data Analyst")
			})
		})

		Convey("When the journal is closed", func() {
			So(j.Close(), ShouldBeNil)

			Convey("Then further records are dropped without error", func() {
				So(j.Record(context.Background(), journal.Entry{ID: "late"}), ShouldBeFalse)
			})

			Convey("And closing again is a no-op", func() {
				So(j.Close(), ShouldBeNil)
			})
		})
	})

	Convey("Given a corrupt journal file", t, func() {
		path := filepath.Join(t.TempDir(), "inputs.json")
		So(os.WriteFile(path, []byte("{corrupt"), 0o644), ShouldBeNil)

		j := journal.NewFileJournal(journal.WithPath(path))
		j.Start(context.Background())

		Convey("When recording an entry", func() {
			So(j.Record(context.Background(), journal.Entry{ID: "fresh"}), ShouldBeTrue)
			So(j.Close(), ShouldBeNil)

			Convey("Then the store restarts from empty instead of failing", func() {
				entries := readEntries(t, path)
				So(entries, ShouldHaveLength, 1)
				So(entries[0].ID, ShouldEqual, "fresh")
			})
		})
	})

	Convey("Given an unstarted journal", t, func() {
		j := journal.NewFileJournal(journal.WithPath(filepath.Join(t.TempDir(), "inputs.json")))

		Convey("Then records are dropped, not queued", func() {
			So(j.Record(context.Background(), journal.Entry{ID: "x"}), ShouldBeFalse)
		})
	})

	Convey("Given an existing journal file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "inputs.json")

		j1 := journal.NewFileJournal(journal.WithPath(path))
		j1.Start(context.Background())
		So(j1.Record(context.Background(), journal.Entry{ID: "first"}), ShouldBeTrue)
		So(j1.Close(), ShouldBeNil)

		Convey("When a new journal appends to it", func() {
			j2 := journal.NewFileJournal(journal.WithPath(path))
			j2.Start(context.Background())
			So(j2.Record(context.Background(), journal.Entry{ID: "second"}), ShouldBeTrue)
			So(j2.Close(), ShouldBeNil)

			Convey("Then prior entries survive", func() {
				entries := readEntries(t, path)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].ID, ShouldEqual, "first")
				So(entries[1].ID, ShouldEqual, "second")
			})
		})
	})
}
