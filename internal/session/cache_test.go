package session

import (
	"testing"
	"time"

	"mentor/internal/feedback"
	"mentor/internal/report"
	"mentor/internal/suppress"
)

func testDirective() feedback.Directive {
	return feedback.Directive{
		Category: feedback.CatRuntime,
		Label:    "TypeError",
		Message:  "boom",
		Line:     9,
		Outcome:  feedback.OutcomeStudent,
	}
}

func TestBundleDigestChangesWithInputs(t *testing.T) {
	b := report.Clean()
	base, err := BundleDigest(b, nil)
	if err != nil {
		t.Fatal(err)
	}

	b2 := report.Clean()
	b2.Student.Success = false
	changed, err := BundleDigest(b2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if base == changed {
		t.Fatal("different bundles hash equal")
	}

	cfg := suppress.New().SuppressStage("analyzer")
	withCfg, err := BundleDigest(b, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if base == withCfg {
		t.Fatal("suppression config must affect the digest")
	}

	again, err := BundleDigest(report.Clean(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if base != again {
		t.Fatal("equal inputs must hash equal")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := Open("mentor-test")
	if err != nil {
		t.Fatal(err)
	}

	key, err := BundleDigest(report.Clean(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(key); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	d := testDirective()
	if err := c.Put(key, NewSnapshot(d, time.Unix(1700000000, 0))); err != nil {
		t.Fatalf("Put: %v", err)
	}

	snap, hit, err := c.Get(key)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if !snap.Same(d) {
		t.Fatalf("snapshot does not match directive: %+v", snap)
	}

	other := d
	other.Line = 10
	if snap.Same(other) {
		t.Fatal("Same must notice a changed line")
	}
}

func TestCacheDropAll(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := Open("mentor-test")
	if err != nil {
		t.Fatal(err)
	}
	key, err := BundleDigest(report.Clean(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put(key, NewSnapshot(testDirective(), time.Now())); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(key); err != nil || hit {
		t.Fatalf("after DropAll: hit=%v err=%v", hit, err)
	}
}

func TestSchemaMismatchIsMiss(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := Open("mentor-test")
	if err != nil {
		t.Fatal(err)
	}
	key, err := BundleDigest(report.Clean(), nil)
	if err != nil {
		t.Fatal(err)
	}
	snap := NewSnapshot(testDirective(), time.Now())
	snap.Schema = snapshotSchemaVersion + 1
	if err := c.Put(key, snap); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(key); err != nil || hit {
		t.Fatalf("stale schema must be a miss: hit=%v err=%v", hit, err)
	}
}
