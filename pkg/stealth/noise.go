package stealth

import (
	"fmt"
	"strings"
)

// Fingerprint-noise tier: wraps the read/export paths fingerprinting scripts
// hash, perturbing the returned values by a per-generation delta. The deltas
// are small enough to stay imperceptible but shift the hash between
// sessions. Seeds and magnitudes are drawn at render time, so two payloads
// from the same config still diverge in their embedded noise.

// A linear congruential generator seeded per page is embedded in each recipe
// rather than Math.random. Canvas reads restart it on every call and exports
// render a noised copy without touching the source canvas, so repeated probes
// of unchanged pixels on the same page hash identically, which is what a real
// (noiseless) browser does too.
const canvasNoiseJS = `(() => {
    try {
        if (typeof HTMLCanvasElement === 'undefined' || typeof CanvasRenderingContext2D === 'undefined') {
            return;
        }
        const seed = __SEED__ >>> 0;
        const clamp = (v) => Math.max(0, Math.min(255, Math.round(v)));
        const perturb = (image) => {
            let state = seed;
            const nextDelta = () => {
                state = (state * 1664525 + 1013904223) >>> 0;
                return (state & 0xffff) / 0xffff * 2 * __MAGNITUDE__ - __MAGNITUDE__;
            };
            const data = image.data;
            const stride = Math.max(4, (Math.floor(data.length / 4 / 256) | 0) * 4);
            for (let i = 0; i < data.length; i += stride) {
                data[i] = clamp(data[i] + nextDelta());
            }
            return image;
        };

        const origGetImageData = CanvasRenderingContext2D.prototype.getImageData;
        CanvasRenderingContext2D.prototype.getImageData = function (...args) {
            return perturb(origGetImageData.apply(this, args));
        };
        CanvasRenderingContext2D.prototype.getImageData.toString = () => 'function getImageData() { [native code] }';

        const noisedClone = (canvas) => {
            if (!canvas.width || !canvas.height || typeof document === 'undefined' || !document.createElement) {
                return null;
            }
            const ctx = canvas.getContext && canvas.getContext('2d');
            if (!ctx) {
                return null;
            }
            const clone = document.createElement('canvas');
            clone.width = canvas.width;
            clone.height = canvas.height;
            const cloneCtx = clone.getContext('2d');
            if (!cloneCtx) {
                return null;
            }
            cloneCtx.putImageData(perturb(origGetImageData.call(ctx, 0, 0, canvas.width, canvas.height)), 0, 0);
            return clone;
        };

        const origToDataURL = HTMLCanvasElement.prototype.toDataURL;
        HTMLCanvasElement.prototype.toDataURL = function (...args) {
            try {
                const clone = noisedClone(this);
                if (clone) {
                    return origToDataURL.apply(clone, args);
                }
            } catch (e) {}
            return origToDataURL.apply(this, args);
        };
        const origToBlob = HTMLCanvasElement.prototype.toBlob;
        if (origToBlob) {
            HTMLCanvasElement.prototype.toBlob = function (...args) {
                try {
                    const clone = noisedClone(this);
                    if (clone) {
                        return origToBlob.apply(clone, args);
                    }
                } catch (e) {}
                return origToBlob.apply(this, args);
            };
        }
    } catch (e) {}
})();`

func renderCanvasNoise(_ *Config, src Source) string {
	return strings.NewReplacer(
		"__SEED__", fmt.Sprintf("%d", src.IntN(1<<31)),
		"__MAGNITUDE__", fmt.Sprintf("%d", 1+src.IntN(3)),
	).Replace(canvasNoiseJS)
}

// Vendor/renderer are answered with fixed strings; every other numeric
// parameter gains a sub-unit additive delta. Non-numeric results pass
// through untouched so context behavior stays valid.
const webglNoiseJS = `(() => {
    try {
        const UNMASKED_VENDOR_WEBGL = 37445;
        const UNMASKED_RENDERER_WEBGL = 37446;
        const epsilon = __EPSILON__;
        ['WebGLRenderingContext', 'WebGL2RenderingContext'].forEach((ctxName) => {
            const ctx = window[ctxName];
            if (!ctx || !ctx.prototype || typeof ctx.prototype.getParameter !== 'function') {
                return;
            }
            const origGetParameter = ctx.prototype.getParameter;
            ctx.prototype.getParameter = function (param) {
                if (param === UNMASKED_VENDOR_WEBGL) {
                    return __VENDOR__;
                }
                if (param === UNMASKED_RENDERER_WEBGL) {
                    return __RENDERER__;
                }
                const value = origGetParameter.call(this, param);
                if (typeof value === 'number' && Number.isFinite(value)) {
                    return value + epsilon;
                }
                return value;
            };
            ctx.prototype.getParameter.toString = () => 'function getParameter() { [native code] }';
        });
    } catch (e) {}
})();`

func renderWebGLNoise(_ *Config, src Source) string {
	return strings.NewReplacer(
		"__VENDOR__", jsString(webglVendor),
		"__RENDERER__", jsString(webglRenderer),
		"__EPSILON__", fmt.Sprintf("%.8f", src.Float64()*1e-4),
	).Replace(webglNoiseJS)
}

// Audio fingerprints hash the sample buffers an OfflineAudioContext renders.
// Each buffer is perturbed once, in place, on first read; the delta is far
// below audibility.
const audioNoiseJS = `(() => {
    try {
        if (typeof AudioBuffer === 'undefined') {
            return;
        }
        const magnitude = __AUDIO_MAGNITUDE__;
        let state = __SEED__ >>> 0;
        const nextDelta = () => {
            state = (state * 1664525 + 1013904223) >>> 0;
            return ((state & 0xffff) / 0xffff - 0.5) * magnitude;
        };
        const noised = new WeakSet();
        const perturb = (buffer, data) => {
            if (noised.has(buffer)) {
                return;
            }
            noised.add(buffer);
            for (let i = 0; i < data.length; i += 100) {
                data[i] = data[i] + nextDelta();
            }
        };

        const origGetChannelData = AudioBuffer.prototype.getChannelData;
        AudioBuffer.prototype.getChannelData = function (...args) {
            const data = origGetChannelData.apply(this, args);
            try { perturb(this, data); } catch (e) {}
            return data;
        };
        AudioBuffer.prototype.getChannelData.toString = () => 'function getChannelData() { [native code] }';

        const origCopyFromChannel = AudioBuffer.prototype.copyFromChannel;
        if (origCopyFromChannel) {
            AudioBuffer.prototype.copyFromChannel = function (...args) {
                try { perturb(this, origGetChannelData.call(this, args[1] || 0)); } catch (e) {}
                return origCopyFromChannel.apply(this, args);
            };
        }
    } catch (e) {}
})();`

func renderAudioNoise(_ *Config, src Source) string {
	return strings.NewReplacer(
		"__SEED__", fmt.Sprintf("%d", src.IntN(1<<31)),
		"__AUDIO_MAGNITUDE__", fmt.Sprintf("%.10f", (1+src.Float64())*1e-7),
	).Replace(audioNoiseJS)
}
