package infrastructure

import (
	"net"

	"localweather.app/internal/ports"
)

// InterfaceNetworkMonitor implements the NetworkMonitor port by inspecting host interfaces
type InterfaceNetworkMonitor struct {
	interfaces func() ([]net.Interface, error)
	addrs      func(net.Interface) ([]net.Addr, error)
}

// NewInterfaceNetworkMonitor creates a monitor over the host's network interfaces
func NewInterfaceNetworkMonitor() *InterfaceNetworkMonitor {
	return &InterfaceNetworkMonitor{
		interfaces: net.Interfaces,
		addrs:      func(iface net.Interface) ([]net.Addr, error) { return iface.Addrs() },
	}
}

// ActiveNetwork returns the first non-loopback interface that is up, or nil
func (m *InterfaceNetworkMonitor) ActiveNetwork() ports.NetworkInfo {
	ifaces, err := m.interfaces()
	if err != nil {
		return nil
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		return &interfaceInfo{iface: iface, addrs: m.addrs}
	}
	return nil
}

type interfaceInfo struct {
	iface net.Interface
	addrs func(net.Interface) ([]net.Addr, error)
}

// IsConnected is true when the interface is running and holds a global unicast address
func (i *interfaceInfo) IsConnected() bool {
	if i.iface.Flags&net.FlagRunning == 0 {
		return false
	}
	addrs, err := i.addrs(i.iface)
	if err != nil {
		return false
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if ok && ipNet.IP.IsGlobalUnicast() {
			return true
		}
	}
	return false
}
