package captions

import "testing"

func TestNormalizeSRT(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"two cues",
			"1\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:02,500 --> 00:00:03,000\nworld\n",
			"Hello world",
		},
		{
			"windows line endings",
			"1\r\n00:00:01,000 --> 00:00:02,000\r\nHello\r\n\r\n2\r\n00:00:02,500 --> 00:00:03,000\r\nworld\r\n",
			"Hello world",
		},
		{
			"inline markup stripped",
			"1\n00:00:01,000 --> 00:00:02,000\n<i>Hello</i> <font color=\"red\">world</font>\n",
			"Hello world",
		},
		{
			"multi-line cue text",
			"1\n00:00:01,000 --> 00:00:04,000\nfirst line\nsecond line\n",
			"first line second line",
		},
		{
			"timing line with position settings",
			"1\n00:00:01,000 --> 00:00:02,000 X1:0 X2:100\nHello\n",
			"Hello",
		},
		{"empty input", "", ""},
		{"plain prose passes through", "already clean text", "already clean text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSRT(tt.raw); got != tt.want {
				t.Errorf("NormalizeSRT(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeSRTIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"1\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:02,500 --> 00:00:03,000\nworld\n",
		"<b>tags</b> and\nline\nbreaks",
	}

	for _, in := range inputs {
		once := NormalizeSRT(in)
		twice := NormalizeSRT(once)
		if once != twice {
			t.Errorf("NormalizeSRT not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
