package options

// DemoOptions carries the demo program's command-line configuration.
type DemoOptions struct {
	Width  *int
	Height *int
	Title  *string
	VSync  *bool
	MSAA   *bool // Request a multisampled framebuffer
}
