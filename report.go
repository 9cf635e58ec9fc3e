package clearloop

import "github.com/cogentcore/webgpu/wgpu"

// ReportAdapters logs every enumerable GPU adapter and the adapter
// default selection would pick. Purely observational: it uses its own
// throwaway instance, runs once at startup, and nothing downstream
// consumes its results.
func ReportAdapters() {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	log := Logger()
	for i, adapter := range instance.EnumerateAdapters(nil) {
		info := adapter.GetInfo()
		log.Info("available adapter",
			"index", i,
			"name", info.Name,
			"type", info.AdapterType.String(),
			"backend", info.BackendType.String(),
			"driver", info.DriverDescription)
		adapter.Release()
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{})
	if err != nil {
		log.Warn("no default adapter", "err", err)
		return
	}
	defer adapter.Release()

	info := adapter.GetInfo()
	log.Info("default adapter",
		"name", info.Name,
		"type", info.AdapterType.String(),
		"backend", info.BackendType.String())
}
