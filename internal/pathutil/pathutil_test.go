package pathutil

import "testing"

func TestStripTrailingSlashes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dir/file", "dir/file"},
		{"dir/", "dir"},
		{"dir///", "dir"},
		{"/", ""},
		{"///", ""},
		{"", ""},
		{"file", "file"},
	}
	for _, tt := range tests {
		if got := StripTrailingSlashes(tt.in); got != tt.want {
			t.Errorf("StripTrailingSlashes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	// Idempotent.
	if got := StripTrailingSlashes(StripTrailingSlashes("a//")); got != "a" {
		t.Errorf("double strip of 'a//' = %q, want 'a'", got)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path     string
		dir      string
		filename string
	}{
		{"dir/dir/file", "dir/dir", "file"},
		{"/file", "", "file"},
		{"file", "", "file"},
		// Pre-normalization behavior: a trailing slash leaves the
		// filename empty. RenameSession strips slashes first.
		{"dir/", "dir", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		got := Split(tt.path)
		if got.Directory != tt.dir || got.Filename != tt.filename {
			t.Errorf("Split(%q) = {%q, %q}, want {%q, %q}",
				tt.path, got.Directory, got.Filename, tt.dir, tt.filename)
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		dir      string
		filename string
		want     string
	}{
		{"", "file", "file"},
		{"dir", "file", "dir/file"},
		{"dir/dir", "file", "dir/dir/file"},
		{"dir/dir", "", "dir/dir"},
	}
	for _, tt := range tests {
		if got := Join(tt.dir, tt.filename); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.dir, tt.filename, got, tt.want)
		}
	}
}

func TestJoinPanicsOnTrailingSlash(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Join with a slash-terminated directory did not panic")
		}
	}()
	Join("dir/", "file")
}

func TestSplitJoinRoundTrip(t *testing.T) {
	// join(split(p)) == p for normalized paths with a non-empty filename.
	paths := []string{"a/b/c", "/etc/hosts", "file", "a/.hidden", "x/y z/q"}
	for _, p := range paths {
		df := Split(p)
		if got := Join(df.Directory, df.Filename); got != p {
			t.Errorf("Join(Split(%q)) = %q", p, got)
		}
	}

	// split(join(a, b)) == {a, b} for non-empty a without a trailing
	// slash and b without a slash.
	pairs := []struct{ dir, filename string }{
		{"a", "b"}, {"a/b", "c"}, {"/abs/path", "name.txt"},
	}
	for _, pr := range pairs {
		df := Split(Join(pr.dir, pr.filename))
		if df.Directory != pr.dir || df.Filename != pr.filename {
			t.Errorf("Split(Join(%q, %q)) = {%q, %q}",
				pr.dir, pr.filename, df.Directory, df.Filename)
		}
	}
}
