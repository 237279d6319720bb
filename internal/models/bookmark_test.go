package models

import "testing"

func TestSplitTags(t *testing.T) {
	tags := SplitTags("c2, redteam ,golang")
	if len(tags) != 3 {
		t.Fatalf("tags len = %d, want 3", len(tags))
	}
	if tags[0] != "c2" || tags[1] != "redteam" || tags[2] != "golang" {
		t.Fatalf("tags = %v", tags)
	}
}

func TestSplitTagsEmpty(t *testing.T) {
	if tags := SplitTags("  "); tags != nil {
		t.Fatalf("tags = %v, want nil", tags)
	}
	if tags := SplitTags(", ,"); tags != nil {
		t.Fatalf("tags = %v, want nil", tags)
	}
}

func TestJoinTags(t *testing.T) {
	if joined := JoinTags([]string{"c2", "golang"}); joined != "c2, golang" {
		t.Fatalf("joined = %q", joined)
	}
	if joined := JoinTags(nil); joined != "" {
		t.Fatalf("joined = %q, want empty", joined)
	}
}
