package stealth

import (
	"math/rand/v2"
	"testing"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"
	"github.com/stretchr/testify/assert"
	requiretest "github.com/stretchr/testify/require"
)

// browserStubJS approximates the page globals the payload touches. Surfaces
// the payload probes with typeof guards (canvas, WebGL, audio, HTMLElement)
// are deliberately left undefined; the recipes must skip them cleanly.
const browserStubJS = `
var window = globalThis;
window.navigator = {};
var navigator = window.navigator;
window.screen = {};
var screen = window.screen;
window.document = {};
var document = window.document;
var performance = { _t: 0, now: function () { this._t += 16.7; return this._t; } };
window.performance = performance;
window.cdc_adoQpoasnfa76pfcZLmcfl_Array = [];
window.cdc_adoQpoasnfa76pfcZLmcfl_Promise = [];
window.cdc_adoQpoasnfa76pfcZLmcfl_Symbol = [];
`

// canvasStubJS adds just enough of the 2D canvas surface to exercise the
// canvas noise recipe: a context whose reads return uniform pixels.
const canvasStubJS = `
function CanvasRenderingContext2D() {}
CanvasRenderingContext2D.prototype.getImageData = function (x, y, w, h) {
    const data = new Uint8ClampedArray(w * h * 4);
    data.fill(128);
    return { data: data, width: w, height: h };
};
function HTMLCanvasElement() {}
HTMLCanvasElement.prototype.toDataURL = function () { return 'data:,'; };
`

func newStubbedVM(t *testing.T, stubs string) *goja.Runtime {
	t.Helper()
	vm := goja.New()
	new(require.Registry).Enable(vm)
	console.Enable(vm)

	_, err := vm.RunString(stubs)
	requiretest.NoError(t, err, "stub environment must evaluate")
	return vm
}

// evalPayload runs the payload for cfg in a fresh stubbed runtime and returns
// the runtime for follow-up assertions.
func evalPayload(t *testing.T, cfg *Config) *goja.Runtime {
	t.Helper()
	vm := newStubbedVM(t, browserStubJS)

	_, err := vm.RunString(Generate(cfg))
	requiretest.NoError(t, err, "payload must evaluate without throwing")
	return vm
}

// check evaluates a JS expression and returns the result.
func check(t *testing.T, vm *goja.Runtime, expr string) goja.Value {
	t.Helper()
	v, err := vm.RunString(expr)
	requiretest.NoError(t, err, "expression %q", expr)
	return v
}

func TestPayloadIdentityOverrides(t *testing.T) {
	vm := evalPayload(t, &Config{DoNotTrack: Bool(true)})

	assert.True(t, check(t, vm, `navigator.webdriver === undefined`).ToBoolean())
	assert.True(t, check(t, vm, `typeof window.cdc_adoQpoasnfa76pfcZLmcfl_Array === 'undefined'`).ToBoolean())
	assert.Contains(t, check(t, vm, `navigator.userAgent`).String(), "Mozilla/5.0")
	assert.Equal(t, "Win32", check(t, vm, `navigator.platform`).String())
	assert.Equal(t, "en-US", check(t, vm, `navigator.language`).String())
	assert.Equal(t, int64(8), check(t, vm, `navigator.hardwareConcurrency`).ToInteger())
	assert.Equal(t, int64(8), check(t, vm, `navigator.deviceMemory`).ToInteger())
	assert.Equal(t, int64(0), check(t, vm, `navigator.maxTouchPoints`).ToInteger())
	assert.Equal(t, "1", check(t, vm, `navigator.doNotTrack`).String())

	assert.Equal(t, int64(1920), check(t, vm, `screen.width`).ToInteger())
	assert.Equal(t, int64(1080), check(t, vm, `screen.height`).ToInteger())
	assert.Equal(t, int64(1040), check(t, vm, `screen.availHeight`).ToInteger())
	assert.Equal(t, int64(24), check(t, vm, `screen.colorDepth`).ToInteger())
	assert.Equal(t, int64(1), check(t, vm, `window.devicePixelRatio`).ToInteger())
}

func TestPayloadOverridesLookNative(t *testing.T) {
	vm := evalPayload(t, nil)

	desc := check(t, vm, `Object.getOwnPropertyDescriptor(navigator, 'webdriver')`)
	requiretest.False(t, goja.IsUndefined(desc))
	assert.True(t, check(t, vm, `Object.getOwnPropertyDescriptor(navigator, 'webdriver').configurable`).ToBoolean())
	assert.True(t, check(t, vm, `Object.getOwnPropertyDescriptor(navigator, 'webdriver').enumerable`).ToBoolean())
}

func TestPayloadCapabilityOverrides(t *testing.T) {
	vm := evalPayload(t, nil)

	assert.True(t, check(t, vm, `typeof window.chrome.runtime === 'object'`).ToBoolean())
	assert.False(t, check(t, vm, `window.chrome.app.isInstalled`).ToBoolean())
	assert.Equal(t, "navigate", check(t, vm, `window.chrome.loadTimes().navigationType`).String())

	assert.Equal(t, int64(3), check(t, vm, `navigator.plugins.length`).ToInteger())
	assert.Equal(t, "Chrome PDF Viewer", check(t, vm, `navigator.plugins.namedItem('Chrome PDF Viewer').name`).String())
	assert.Equal(t, "application/pdf", check(t, vm, `navigator.mimeTypes.item(0).type`).String())

	assert.Equal(t, "4g", check(t, vm, `navigator.connection.effectiveType`).String())
	assert.True(t, check(t, vm, `navigator.userActivation.hasBeenActive`).ToBoolean())
	assert.Equal(t, int64(4), check(t, vm, `navigator.getGamepads().length`).ToInteger())
	assert.True(t, check(t, vm, `typeof window.speechSynthesis.getVoices === 'function'`).ToBoolean())
}

func TestPayloadBehaviorOverrides(t *testing.T) {
	vm := evalPayload(t, nil)

	assert.False(t, check(t, vm, `document.hidden`).ToBoolean())
	assert.Equal(t, "visible", check(t, vm, `document.visibilityState`).String())
	assert.True(t, check(t, vm, `document.hasFocus()`).ToBoolean())

	// Jittered clock still behaves like Date, in every call form.
	assert.Equal(t, "Date", check(t, vm, `Date.name`).String())
	assert.True(t, check(t, vm, `typeof Date() === 'string'`).ToBoolean())
	assert.True(t, check(t, vm, `typeof Date.now() === 'number'`).ToBoolean())
	assert.True(t, check(t, vm, `typeof Date.parse === 'function'`).ToBoolean())
	assert.True(t, check(t, vm, `new Date(123) instanceof Date`).ToBoolean())
	assert.True(t, check(t, vm, `new Date().constructor === Date`).ToBoolean())
	assert.Equal(t, int64(0), check(t, vm, `new Date(0).getTime()`).ToInteger())

	// performance.now stays monotonic despite the jitter.
	assert.True(t, check(t, vm, `
		(() => {
			let prev = performance.now();
			for (let i = 0; i < 50; i++) {
				const cur = performance.now();
				if (cur < prev) { return false; }
				prev = cur;
			}
			return true;
		})()
	`).ToBoolean())
}

func TestPayloadCanvasNoiseStableWithinPage(t *testing.T) {
	vm := newStubbedVM(t, browserStubJS+canvasStubJS)
	_, err := vm.RunString(GenerateWith(nil, rand.New(rand.NewPCG(3, 3))))
	requiretest.NoError(t, err)

	assert.True(t, check(t, vm, `
		(() => {
			const ctx = new CanvasRenderingContext2D();
			const a = ctx.getImageData(0, 0, 8, 8).data;
			const b = ctx.getImageData(0, 0, 8, 8).data;
			for (let i = 0; i < a.length; i++) {
				if (a[i] !== b[i]) { return false; }
			}
			return true;
		})()
	`).ToBoolean(), "repeated reads of the same pixels must be identical")

	assert.True(t, check(t, vm, `
		(() => {
			const ctx = new CanvasRenderingContext2D();
			const data = ctx.getImageData(0, 0, 8, 8).data;
			for (let i = 0; i < data.length; i++) {
				if (data[i] !== 128) { return true; }
			}
			return false;
		})()
	`).ToBoolean(), "the read path must actually perturb the pixels")
}

func TestPayloadDisabledGroupsStillEvaluate(t *testing.T) {
	vm := evalPayload(t, &Config{Behavior: Bool(false), CanvasNoise: Bool(false)})
	assert.True(t, check(t, vm, `navigator.webdriver === undefined`).ToBoolean())
	assert.True(t, check(t, vm, `document.hasFocus === undefined`).ToBoolean())
}
