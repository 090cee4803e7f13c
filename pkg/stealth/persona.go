package stealth

// Fixed identity values shared by the payload and the launch arguments. The
// payload spoofs these on the page globals; LaunchArguments and
// AllocatorOptions derive the matching process flags from the same constants
// so the two surfaces never disagree.
const (
	personaPlatform   = "Win32"
	personaLanguages  = `['en-US', 'en']`
	personaCores      = 8
	personaMemoryGB   = 8
	personaTouchCount = 0

	screenWidth      = 1920
	screenHeight     = 1080
	screenTaskbarPx  = 40 // subtracted from availHeight, Windows taskbar
	screenColorDepth = 24
	screenPixelRatio = 1

	webglVendor   = "Intel Inc."
	webglRenderer = "Intel Iris OpenGL Engine"
)
