package stealth

import (
	"fmt"
	"strings"

	"github.com/xkilldash9x/shroud/pkg/humanoid"
)

// Behavior tier: defeats timing-based fingerprinting, which looks for the
// suspiciously exact, perfectly idle signatures of headless automation. All
// three groups share the behavior gate; each renders its own parameter draw.

// Scroll calls gain smooth positional drift, clicks and focus gain a short
// randomized delay before delegating. The drift table comes from Perlin
// noise so consecutive scroll offsets wander rather than flicker.
const interactionJitterJS = `(() => {
    try {
        const drift = __DRIFT_TABLE__;
        const scrollJitter = __SCROLL_JITTER_PX__;
        let driftIndex = 0;
        const nextDrift = () => {
            driftIndex = (driftIndex + 1) % drift.length;
            return drift[driftIndex];
        };
        const jitterPx = () => Math.round(nextDrift() / __DRIFT_AMPLITUDE__ * scrollJitter);

        if (typeof window.scrollBy === 'function') {
            const origScrollBy = window.scrollBy.bind(window);
            window.scrollBy = function (...args) {
                if (args.length === 2 && typeof args[1] === 'number') {
                    return origScrollBy(args[0], args[1] + jitterPx());
                }
                if (args.length === 1 && args[0] && typeof args[0].top === 'number') {
                    return origScrollBy(Object.assign({}, args[0], { top: args[0].top + jitterPx() }));
                }
                return origScrollBy(...args);
            };
        }
        if (typeof window.scrollTo === 'function') {
            const origScrollTo = window.scrollTo.bind(window);
            window.scrollTo = function (...args) {
                if (args.length === 2 && typeof args[1] === 'number') {
                    return origScrollTo(args[0], args[1] + jitterPx());
                }
                return origScrollTo(...args);
            };
        }

        const delayMs = () => __CLICK_DELAY_MIN_MS__ + Math.floor(Math.random() * (__CLICK_DELAY_MAX_MS__ - __CLICK_DELAY_MIN_MS__));
        if (typeof HTMLElement !== 'undefined' && HTMLElement.prototype.click) {
            const origClick = HTMLElement.prototype.click;
            HTMLElement.prototype.click = function (...args) {
                setTimeout(() => origClick.apply(this, args), delayMs());
            };
            HTMLElement.prototype.click.toString = () => 'function click() { [native code] }';
        }
        if (typeof HTMLElement !== 'undefined' && HTMLElement.prototype.focus) {
            const origFocus = HTMLElement.prototype.focus;
            HTMLElement.prototype.focus = function (...args) {
                setTimeout(() => origFocus.apply(this, args), Math.floor(Math.random() * __FOCUS_DELAY_MAX_MS__));
            };
            HTMLElement.prototype.focus.toString = () => 'function focus() { [native code] }';
        }
    } catch (e) {}
})();`

func renderInteractionJitter(cfg *Config, src Source) string {
	p := humanoid.NewProfile(cfg.Humanoid, src.Int64())
	return strings.NewReplacer(
		"__DRIFT_TABLE__", jsFloatArray(p.Drift),
		"__DRIFT_AMPLITUDE__", fmt.Sprintf("%.2f", p.DriftAmplitude),
		"__SCROLL_JITTER_PX__", fmt.Sprintf("%.2f", p.ScrollJitterPx),
		"__CLICK_DELAY_MIN_MS__", fmt.Sprintf("%d", p.ClickDelayMinMs),
		"__CLICK_DELAY_MAX_MS__", fmt.Sprintf("%d", p.ClickDelayMaxMs),
		"__FOCUS_DELAY_MAX_MS__", fmt.Sprintf("%d", p.FocusDelayMaxMs),
	).Replace(interactionJitterJS)
}

// Background throttling detectors check whether the page ever reports itself
// hidden. It never does.
const visibilityJS = `(() => {
    try {
        Object.defineProperty(document, 'hidden', {
            get: () => false,
            configurable: true,
            enumerable: true
        });
        Object.defineProperty(document, 'visibilityState', {
            get: () => 'visible',
            configurable: true,
            enumerable: true
        });
        document.hasFocus = () => true;
    } catch (e) {}
})();`

func renderVisibility(_ *Config, _ Source) string {
	return visibilityJS
}

// Sub-millisecond jitter on performance.now and wall-clock construction. The
// jitter is drawn from a seeded generator embedded in the recipe, monotonic
// enough not to break interval math on the page. Date stays a plain function
// so the legacy call form Date() keeps returning a string like the native
// constructor does.
const timerJitterJS = `(() => {
    try {
        const jitterMs = __TIMER_JITTER_MS__;
        let state = __SEED__ >>> 0;
        const next = () => {
            state = (state * 1664525 + 1013904223) >>> 0;
            return state / 4294967296;
        };
        if (typeof performance !== 'undefined' && typeof performance.now === 'function') {
            const origNow = performance.now.bind(performance);
            let last = 0;
            performance.now = function () {
                const jittered = origNow() + (next() - 0.5) * jitterMs;
                last = Math.max(last, jittered);
                return last;
            };
            performance.now.toString = () => 'function now() { [native code] }';
        }
        const NativeDate = Date;
        const offset = () => Math.round((next() - 0.5) * jitterMs);
        const JitterDate = function (...args) {
            if (new.target === undefined) {
                return NativeDate();
            }
            if (args.length === 0) {
                return new NativeDate(NativeDate.now() + offset());
            }
            return new NativeDate(...args);
        };
        JitterDate.prototype = NativeDate.prototype;
        JitterDate.now = () => NativeDate.now() + offset();
        JitterDate.parse = NativeDate.parse;
        JitterDate.UTC = NativeDate.UTC;
        Object.defineProperty(JitterDate, 'name', { value: 'Date', configurable: true });
        Object.defineProperty(JitterDate, 'length', { value: 7, configurable: true });
        JitterDate.toString = () => 'function Date() { [native code] }';
        Object.defineProperty(NativeDate.prototype, 'constructor', {
            value: JitterDate,
            writable: true,
            configurable: true
        });
        window.Date = JitterDate;
    } catch (e) {}
})();`

func renderTimerJitter(cfg *Config, src Source) string {
	p := humanoid.NewProfile(cfg.Humanoid, src.Int64())
	return strings.NewReplacer(
		"__TIMER_JITTER_MS__", fmt.Sprintf("%.4f", p.TimerJitterMs),
		"__SEED__", fmt.Sprintf("%d", src.IntN(1<<31)),
	).Replace(timerJitterJS)
}

func jsFloatArray(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.3f", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
