// Package content holds the landing page's copy tables: the model
// browser, use-case selector, audience lanes, community workflow
// gallery, and download targets. The data is fixed at build time and
// served read-only.
package content

import "time"

// Auto-advance intervals per carousel section, as shipped.
const (
	ModelsInterval    = 5 * time.Second
	UseCasesInterval  = 6 * time.Second
	WorkflowsInterval = 6 * time.Second
)

type Model struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Video       string `json:"video"`
}

type UseCase struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Video       string `json:"video"`
}

type Audience struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Video       string `json:"video"`
}

type Workflow struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Video   string `json:"video"`
	Link    string `json:"link"`
	ColSpan int    `json:"colSpan"`
}

type DownloadTarget struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
	Href        string `json:"href,omitempty"`
	Badge       string `json:"badge,omitempty"`
}

type Downloads struct {
	Windows  DownloadTarget `json:"windows"`
	MacLinux DownloadTarget `json:"macLinux"`
	Browser  DownloadTarget `json:"browser"`
}

type Catalog struct {
	Models    []Model    `json:"models"`
	UseCases  []UseCase  `json:"useCases"`
	Audiences []Audience `json:"audiences"`
	Workflows []Workflow `json:"workflows"`
	Download  Downloads  `json:"download"`
}

// ModelNames returns the carousel item list for the model browser.
func (c Catalog) ModelNames() []string {
	names := make([]string, len(c.Models))
	for i, m := range c.Models {
		names[i] = m.Name
	}
	return names
}

// UseCaseIDs returns the carousel item list for the use-case selector.
func (c Catalog) UseCaseIDs() []string {
	ids := make([]string, len(c.UseCases))
	for i, u := range c.UseCases {
		ids[i] = u.ID
	}
	return ids
}

// WorkflowIDs returns the carousel item list for the workflow gallery.
func (c Catalog) WorkflowIDs() []string {
	ids := make([]string, len(c.Workflows))
	for i, w := range c.Workflows {
		ids[i] = w.ID
	}
	return ids
}

// Default returns the shipped catalog.
func Default() Catalog {
	return Catalog{
		Models: []Model{
			{
				Name:        "Overworld/Waypoint-1-Small",
				Type:        "World Model",
				Description: "Real-time world simulation and generation",
				Link:        "https://github.com/daydreamlive/scope-overworld",
				Video:       "/videos/video-2.mp4",
			},
			{
				Name:        "krea/krea-realtime-video",
				Type:        "Autoregressive Video Diffusion Model",
				Description: "Ultra-fast real-time video generation",
				Link:        "https://github.com/daydreamlive/scope/blob/main/src/scope/core/pipelines/krea_realtime_video/docs/usage.md",
				Video:       "/videos/video-1.mp4",
			},
			{
				Name:        "NVlabs/LongLive-1.3B",
				Type:        "Autoregressive Video Diffusion Model",
				Description: "Long-form coherent video synthesis",
				Link:        "https://github.com/daydreamlive/scope/blob/main/src/scope/core/pipelines/longlive/docs/usage.md",
				Video:       "/videos/video-6.mp4",
			},
			{
				Name:        "KlingTeam/MemFlow",
				Type:        "Autoregressive Video Diffusion Model",
				Description: "Memory-efficient video flow generation",
				Link:        "https://github.com/daydreamlive/scope/blob/main/src/scope/core/pipelines/memflow/docs/usage.md",
				Video:       "/videos/video-3.mp4",
			},
			{
				Name:        "StreamDiffusionV2",
				Type:        "Autoregressive Video Diffusion Model",
				Description: "Streaming real-time diffusion pipeline",
				Link:        "https://github.com/daydreamlive/scope/blob/main/src/scope/core/pipelines/streamdiffusionv2/docs/usage.md",
				Video:       "/videos/streamdiffusion-demo.mp4",
			},
			{
				Name:        "Reward-Forcing-T2V-1.3B",
				Type:        "Autoregressive Video Diffusion Model",
				Description: "Text-to-video with reward optimization",
				Link:        "https://github.com/daydreamlive/scope/blob/main/src/scope/core/pipelines/reward_forcing/docs/usage.md",
				Video:       "/videos/video-5.mp4",
			},
		},
		UseCases: []UseCase{
			{
				ID:          "live-performances",
				Icon:        "Drama",
				Title:       "Live performances",
				Description: "AI visuals that react to you, your audience, your music. No pre-renders.",
				Video:       "/videos/video-1.mp4",
			},
			{
				ID:          "interactive-stories",
				Icon:        "Gamepad2",
				Title:       "Interactive stories",
				Description: "Choose-your-own-adventure experiences powered by world models.",
				Video:       "/videos/video-2.mp4",
			},
			{
				ID:          "instant-previz",
				Icon:        "Clapperboard",
				Title:       "Instant pre-viz",
				Description: "See AI VFX concepts instantly instead of waiting hours for a render.",
				Video:       "/videos/video-3.mp4",
			},
			{
				ID:          "ai-avatars",
				Icon:        "Bot",
				Title:       "AI avatars",
				Description: "Characters that exist in real-time, not as pre-recorded clips.",
				Video:       "/videos/video-4.mp4",
			},
			{
				ID:          "pure-experimentation",
				Icon:        "FlaskConical",
				Title:       "Pure experimentation",
				Description: "Try the latest models the moment they drop. No gatekeepers.",
				Video:       "/videos/video-5.mp4",
			},
			{
				ID:          "world-models",
				Icon:        "Globe",
				Title:       "World models",
				Description: "AI that simulates physics and environments in real-time. Games that generate themselves.",
				Video:       "/videos/video-6.mp4",
			},
		},
		Audiences: []Audience{
			{
				ID:          "researchers",
				Icon:        "Microscope",
				Title:       "Researchers & tinkerers",
				Description: "You want something to build on top of. Scope is your sandbox — break things, push boundaries, publish what you find.",
				Video:       "/videos/video-4.mp4",
			},
			{
				ID:          "creative-tech",
				Icon:        "Palette",
				Title:       "Creative technologists",
				Description: "You already live in TouchDesigner, ComfyUI, or custom code. Scope adds real-time AI video to what you're already doing.",
				Video:       "/videos/video-5.mp4",
			},
			{
				ID:          "performers",
				Icon:        "Mic",
				Title:       "Performers & VJs",
				Description: "You need AI visuals that react live. No pre-renders, no canned loops. Scope transforms your set as it happens.",
				Video:       "/videos/video-7.mp4",
			},
			{
				ID:          "creators",
				Icon:        "Video",
				Title:       "AI-native creators",
				Description: "You're making stuff with AI every day. Scope is the fastest way to iterate on video ideas.",
				Video:       "/videos/video-3.mp4",
			},
		},
		Workflows: []Workflow{
			{
				ID:      "chromatic-cosmic-jellyfish",
				Title:   "Chromatic Cosmic Jellyfish",
				Video:   "/videos/video-1.mp4",
				Link:    "https://app.daydream.live/creators/viborc/chromatic-cosmic-jellyfish",
				ColSpan: 2,
			},
			{
				ID:      "overworld-waypoint-prompt-guide",
				Title:   "Overworld Waypoint Prompt Guide",
				Video:   "/videos/video-2.mp4",
				Link:    "https://app.daydream.live/creators/ericxtang/overworld-waypoint-prompt-guide",
				ColSpan: 1,
			},
			{
				ID:      "scope-v2v-integration-for-unity",
				Title:   "Scope V2V Integration for Unity",
				Video:   "/videos/video-6.mp4",
				Link:    "https://app.daydream.live/creators/hupey/scope-v2v-integration-for-unity",
				ColSpan: 1,
			},
			{
				ID:      "video-conductor",
				Title:   "Video Conductor",
				Video:   "/videos/video-3.mp4",
				Link:    "https://app.daydream.live/creators/ddickinson/video-conductor",
				ColSpan: 2,
			},
			{
				ID:      "the-ninth-door-game-threejs-scope",
				Title:   "The Ninth Door Game | Three.js-Scope",
				Video:   "/videos/video-4.mp4",
				Link:    "https://app.daydream.live/creators/juan-goyret/the-ninth-door-game-threejs-scope",
				ColSpan: 2,
			},
			{
				ID:      "origami-christmas-vibes",
				Title:   "Origami Christmas Vibes",
				Video:   "/videos/video-5.mp4",
				Link:    "https://app.daydream.live/creators/viborc/origami-christmas-vibes",
				ColSpan: 1,
			},
		},
		Download: Downloads{
			Windows: DownloadTarget{
				Title:       "Windows App",
				Description: "Native desktop app with full local inference support",
				CTA:         "Download",
				Href:        "https://github.com/daydreamlive/scope/tags",
			},
			MacLinux: DownloadTarget{
				Title:       "Mac & Linux",
				Description: "Run locally from source with full customization",
				CTA:         "Run Locally",
				Href:        "https://github.com/daydreamlive/scope",
			},
			Browser: DownloadTarget{
				Title:       "Browser App",
				Description: "Real-time AI video in your browser",
				CTA:         "Join Waitlist",
				Badge:       "Coming Soon",
			},
		},
	}
}
