package stealth

// Capability tier: objects a detector probes for shape and behavior rather
// than a single value. Where a recipe intercepts an existing method it keeps
// a bound reference to the original and delegates to it, so the underlying
// operation's side effects survive the wrap.

const chromeRuntimeJS = `(() => {
    try {
        if (!window.chrome) {
            window.chrome = {};
        }
        if (!window.chrome.runtime) {
            window.chrome.runtime = {
                id: undefined,
                connect: function () {
                    return {
                        onMessage: { addListener: function () {}, removeListener: function () {} },
                        onDisconnect: { addListener: function () {}, removeListener: function () {} },
                        postMessage: function () {},
                        disconnect: function () {}
                    };
                },
                sendMessage: function () {},
                onMessage: { addListener: function () {}, removeListener: function () {} },
                onConnect: { addListener: function () {}, removeListener: function () {} }
            };
        }
        if (!window.chrome.csi) {
            window.chrome.csi = function () {
                return {
                    onloadT: Date.now(),
                    startE: Date.now(),
                    pageT: Date.now() / 1000,
                    tran: 15
                };
            };
        }
        if (!window.chrome.loadTimes) {
            window.chrome.loadTimes = function () {
                return {
                    requestTime: Date.now() / 1000,
                    startLoadTime: Date.now() / 1000,
                    commitLoadTime: Date.now() / 1000,
                    finishDocumentLoadTime: Date.now() / 1000,
                    finishLoadTime: Date.now() / 1000,
                    firstPaintTime: Date.now() / 1000,
                    firstPaintAfterLoadTime: 0,
                    navigationType: 'navigate',
                    wasFetchedViaSpdy: false,
                    wasNpnNegotiated: true,
                    npnNegotiatedProtocol: 'h2',
                    wasAlternateProtocolAvailable: false,
                    connectionInfo: 'h2'
                };
            };
        }
        if (!window.chrome.app) {
            window.chrome.app = {
                isInstalled: false,
                InstallState: { DISABLED: 'disabled', INSTALLED: 'installed', NOT_INSTALLED: 'not_installed' },
                RunningState: { CANNOT_RUN: 'cannot_run', READY_TO_RUN: 'ready_to_run', RUNNING: 'running' }
            };
        }
    } catch (e) {}
})();`

func renderChromeRuntime(_ *Config, _ Source) string {
	return chromeRuntimeJS
}

// Notification permission queries return the Notification global's own state;
// every other permission name falls through to the real implementation.
const permissionsJS = `(() => {
    try {
        if (navigator.permissions && navigator.permissions.query) {
            const originalQuery = navigator.permissions.query.bind(navigator.permissions);
            navigator.permissions.query = (parameters) => {
                if (parameters && parameters.name === 'notifications') {
                    return Promise.resolve({
                        state: typeof Notification !== 'undefined' ? Notification.permission : 'default',
                        onchange: null
                    });
                }
                return originalQuery(parameters);
            };
        }
    } catch (e) {}
})();`

func renderPermissions(_ *Config, _ Source) string {
	return permissionsJS
}

const pluginsJS = `(() => {
    try {
        const makePlugin = (name, filename, description, mimes) => {
            const plugin = { name, filename, description, length: mimes.length };
            plugin.item = (i) => mimes[i] || null;
            plugin.namedItem = (n) => mimes.find((m) => m.type === n) || null;
            return plugin;
        };
        const pdfMimes = [
            { type: 'application/pdf', suffixes: 'pdf', description: 'Portable Document Format' },
            { type: 'text/pdf', suffixes: 'pdf', description: 'Portable Document Format' }
        ];
        const pluginList = [
            makePlugin('PDF Viewer', 'internal-pdf-viewer', 'Portable Document Format', pdfMimes),
            makePlugin('Chrome PDF Viewer', 'internal-pdf-viewer', 'Portable Document Format', pdfMimes),
            makePlugin('Chromium PDF Viewer', 'internal-pdf-viewer', 'Portable Document Format', pdfMimes)
        ];
        pluginList.item = (i) => pluginList[i] || null;
        pluginList.namedItem = (n) => pluginList.find((p) => p.name === n) || null;
        pluginList.refresh = () => {};
        Object.defineProperty(navigator, 'plugins', {
            get: () => pluginList,
            configurable: true,
            enumerable: true
        });

        const mimeList = pdfMimes.slice();
        mimeList.item = (i) => mimeList[i] || null;
        mimeList.namedItem = (n) => mimeList.find((m) => m.type === n) || null;
        Object.defineProperty(navigator, 'mimeTypes', {
            get: () => mimeList,
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderPlugins(_ *Config, _ Source) string {
	return pluginsJS
}

// One microphone and one camera, the shape an ordinary laptop reports before
// any permission is granted (empty labels, stable default ids).
const mediaDevicesJS = `(() => {
    try {
        if (navigator.mediaDevices && navigator.mediaDevices.enumerateDevices) {
            navigator.mediaDevices.enumerateDevices = () => Promise.resolve([
                { deviceId: 'default', kind: 'audioinput', label: '', groupId: 'af0c4ff2b2a3e1f0' },
                { deviceId: 'default', kind: 'videoinput', label: '', groupId: 'b39fdcab72e14c1d' }
            ]);
        }
    } catch (e) {}
})();`

func renderMediaDevices(_ *Config, _ Source) string {
	return mediaDevicesJS
}

// Inert stand-ins for APIs headless builds either omit or answer strangely.
// Each resolves or rejects predictably instead of throwing on access.
const capabilityStubsJS = `(() => {
    try {
        if (!window.speechSynthesis) {
            window.speechSynthesis = {
                pending: false,
                speaking: false,
                paused: false,
                getVoices: () => [],
                speak: () => {},
                cancel: () => {},
                pause: () => {},
                resume: () => {},
                addEventListener: () => {},
                removeEventListener: () => {}
            };
        }
        navigator.getGamepads = () => [null, null, null, null];
        navigator.getBattery = () => Promise.resolve({
            charging: true,
            chargingTime: 0,
            dischargingTime: Infinity,
            level: 1,
            onchargingchange: null,
            onlevelchange: null,
            addEventListener: () => {},
            removeEventListener: () => {}
        });
        if (!navigator.clipboard) {
            navigator.clipboard = {
                readText: () => Promise.reject(new Error('Read permission denied.')),
                writeText: () => Promise.resolve()
            };
        }
    } catch (e) {}
})();`

func renderCapabilityStubs(_ *Config, _ Source) string {
	return capabilityStubsJS
}

const connectionInfoJS = `(() => {
    try {
        Object.defineProperty(navigator, 'connection', {
            get: () => ({
                effectiveType: '4g',
                type: undefined,
                rtt: 50,
                downlink: 10,
                saveData: false,
                onchange: null
            }),
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderConnectionInfo(_ *Config, _ Source) string {
	return connectionInfoJS
}

const userActivationJS = `(() => {
    try {
        Object.defineProperty(navigator, 'userActivation', {
            get: () => ({ hasBeenActive: true, isActive: false }),
            configurable: true,
            enumerable: true
        });
    } catch (e) {}
})();`

func renderUserActivation(_ *Config, _ Source) string {
	return userActivationJS
}
