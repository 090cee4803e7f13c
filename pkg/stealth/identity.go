package stealth

import (
	"fmt"
	"strings"
)

// Identity tier: static identity signals and the automation marker. Every
// override is defined configurable and enumerable so that later introspection
// (including the detector's own) sees a property indistinguishable in shape
// from a browser-native one.

const webdriverJS = `(() => {
    try {
        Object.defineProperty(navigator, 'webdriver', {
            get: () => undefined,
            configurable: true,
            enumerable: true
        });
        Object.defineProperty(navigator, 'userAgent', {
            get: () => __USER_AGENT__,
            configurable: true,
            enumerable: true
        });
        delete window.cdc_adoQpoasnfa76pfcZLmcfl_Array;
        delete window.cdc_adoQpoasnfa76pfcZLmcfl_Promise;
        delete window.cdc_adoQpoasnfa76pfcZLmcfl_Symbol;
    } catch (e) {}
})();`

func renderWebdriver(cfg *Config, src Source) string {
	return strings.NewReplacer(
		"__USER_AGENT__", jsString(userAgentFor(cfg, src)),
	).Replace(webdriverJS)
}

const languagesJS = `(() => {
    try {
        Object.defineProperty(navigator, 'languages', {
            get: () => __LANGUAGES__,
            configurable: true,
            enumerable: true
        });
        Object.defineProperty(navigator, 'language', {
            get: () => __LANGUAGES__[0],
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderLanguages(_ *Config, _ Source) string {
	return strings.NewReplacer("__LANGUAGES__", personaLanguages).Replace(languagesJS)
}

const platformJS = `(() => {
    try {
        Object.defineProperty(navigator, 'platform', {
            get: () => __PLATFORM__,
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderPlatform(_ *Config, _ Source) string {
	return strings.NewReplacer("__PLATFORM__", jsString(personaPlatform)).Replace(platformJS)
}

const hardwareConcurrencyJS = `(() => {
    try {
        Object.defineProperty(navigator, 'hardwareConcurrency', {
            get: () => __CORES__,
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderHardwareConcurrency(_ *Config, _ Source) string {
	return strings.NewReplacer("__CORES__", fmt.Sprintf("%d", personaCores)).Replace(hardwareConcurrencyJS)
}

const deviceMemoryJS = `(() => {
    try {
        Object.defineProperty(navigator, 'deviceMemory', {
            get: () => __MEMORY_GB__,
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderDeviceMemory(_ *Config, _ Source) string {
	return strings.NewReplacer("__MEMORY_GB__", fmt.Sprintf("%d", personaMemoryGB)).Replace(deviceMemoryJS)
}

const screenJS = `(() => {
    try {
        const geometry = {
            width: __WIDTH__,
            height: __HEIGHT__,
            availWidth: __WIDTH__,
            availHeight: __AVAIL_HEIGHT__,
            colorDepth: __COLOR_DEPTH__,
            pixelDepth: __COLOR_DEPTH__
        };
        for (const key of Object.keys(geometry)) {
            Object.defineProperty(screen, key, {
                get: () => geometry[key],
                configurable: true,
                enumerable: true
            });
        }
        Object.defineProperty(window, 'devicePixelRatio', {
            get: () => __PIXEL_RATIO__,
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderScreen(_ *Config, _ Source) string {
	return strings.NewReplacer(
		"__WIDTH__", fmt.Sprintf("%d", screenWidth),
		"__HEIGHT__", fmt.Sprintf("%d", screenHeight),
		"__AVAIL_HEIGHT__", fmt.Sprintf("%d", screenHeight-screenTaskbarPx),
		"__COLOR_DEPTH__", fmt.Sprintf("%d", screenColorDepth),
		"__PIXEL_RATIO__", fmt.Sprintf("%d", screenPixelRatio),
	).Replace(screenJS)
}

const touchJS = `(() => {
    try {
        Object.defineProperty(navigator, 'maxTouchPoints', {
            get: () => __TOUCH_POINTS__,
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderTouch(_ *Config, _ Source) string {
	return strings.NewReplacer("__TOUCH_POINTS__", fmt.Sprintf("%d", personaTouchCount)).Replace(touchJS)
}

// Headless Chrome reports outer dimensions equal to the viewport; a real
// window carries browser chrome around it.
const windowFrameJS = `(() => {
    try {
        Object.defineProperty(window, 'outerWidth', {
            get: () => (window.innerWidth || __WIDTH__),
            configurable: true,
            enumerable: true
        });
        Object.defineProperty(window, 'outerHeight', {
            get: () => (window.innerHeight || __VIEW_HEIGHT__) + 85,
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderWindowFrame(_ *Config, _ Source) string {
	return strings.NewReplacer(
		"__WIDTH__", fmt.Sprintf("%d", screenWidth),
		"__VIEW_HEIGHT__", fmt.Sprintf("%d", screenHeight-screenTaskbarPx-85),
	).Replace(windowFrameJS)
}

const doNotTrackJS = `(() => {
    try {
        Object.defineProperty(navigator, 'doNotTrack', {
            get: () => '1',
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderDoNotTrack(_ *Config, _ Source) string {
	return doNotTrackJS
}

// jsString quotes a Go string as a JS string literal. Go's quoting rules are
// a compatible subset for the values rendered here (no backslash-x escapes
// beyond what JS accepts).
func jsString(s string) string {
	return fmt.Sprintf("%q", s)
}
