package video

import "testing"

func TestForceStyle(t *testing.T) {
	tests := []struct {
		name string
		opts EmbedOptions
		want string
	}{
		{
			name: "all fields",
			opts: EmbedOptions{
				FontName:  "Noto Sans CJK SC",
				FontSize:  24,
				FontColor: "FFFFFF",
			},
			want: "Fontname=Noto Sans CJK SC,Fontsize=24,PrimaryColour=&HFFFFFF",
		},
		{
			name: "custom color",
			opts: EmbedOptions{
				FontName:  "Arial",
				FontSize:  32,
				FontColor: "00FFFF",
			},
			want: "Fontname=Arial,Fontsize=32,PrimaryColour=&H00FFFF",
		},
		{
			name: "size only",
			opts: EmbedOptions{FontSize: 20},
			want: "Fontsize=20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := forceStyle(tt.opts)
			if got != tt.want {
				t.Errorf("forceStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubtitleFilter(t *testing.T) {
	got := subtitleFilter("subs.srt", DefaultEmbedOptions())
	want := "subtitles=subs.srt:force_style='Fontname=Noto Sans CJK SC,Fontsize=24,PrimaryColour=&HFFFFFF'"
	if got != want {
		t.Errorf("subtitleFilter() = %q, want %q", got, want)
	}
}
