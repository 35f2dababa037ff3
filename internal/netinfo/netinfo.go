// Package netinfo resolves the network identity of the local machine.
package netinfo

import (
	"context"
	"net"
	"os"
	"strings"
	"sync"
	"time"
)

// Name-service lookups can stall when the resolver is unreachable.
const lookupTimeout = 5 * time.Second

// Info holds the resolved network identity. An empty field means the value
// could not be determined.
type Info struct {
	Hostname  string `json:"hostname"`
	IPAddress string `json:"ip_address"`
	FQDN      string `json:"fqdn"`
}

type resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

var (
	once   sync.Once
	cached Info
)

// Get resolves the hostname, primary IP address and FQDN of the local
// machine. The result is computed at most once per process; later calls
// return the cached value. On failure all three fields are empty rather than
// a partial mix.
func Get() Info {
	once.Do(func() {
		hostname, err := os.Hostname()
		cached = resolve(hostname, err, net.DefaultResolver)
	})
	return cached
}

func resolve(hostname string, hostErr error, r resolver) Info {
	if hostErr != nil || hostname == "" {
		return Info{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	addrs, err := r.LookupHost(ctx, hostname)
	if err != nil || len(addrs) == 0 {
		return Info{}
	}

	info := Info{
		Hostname:  hostname,
		IPAddress: addrs[0],
	}

	// A FQDN identical to the bare hostname adds nothing; treat it as
	// undetermined.
	if names, err := r.LookupAddr(ctx, info.IPAddress); err == nil && len(names) > 0 {
		fqdn := strings.TrimSuffix(names[0], ".")
		if fqdn != hostname {
			info.FQDN = fqdn
		}
	}

	return info
}
