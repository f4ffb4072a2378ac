package middleware

import (
	"log"
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// IPFilterMiddleware blocks requests based on IP address. Addresses in the
// blocklist are always rejected; a non-empty allowlist admits only the
// networks it names. Entries are CIDR ranges or single addresses.
func IPFilterMiddleware(blocklist, allowlist []string) gin.HandlerFunc {
	blocked := parseNetworks(blocklist)
	allowed := parseNetworks(allowlist)

	return func(c *gin.Context) {
		// Extract client IP
		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		// Check blocklist
		if containsIP(blocked, clientIP) {
			c.AbortWithStatus(403)
			return
		}

		// If an allowlist is set, enforce it
		if len(allowed) > 0 && !containsIP(allowed, clientIP) {
			c.AbortWithStatus(403)
			return
		}

		c.Next()
	}
}

func parseNetworks(entries []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			if ip := net.ParseIP(entry); ip != nil {
				bits := 128
				if ip.To4() != nil {
					ip, bits = ip.To4(), 32
				}
				nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
				continue
			}
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			log.Printf("[middleware] ignoring invalid network %q", entry)
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets
}

func containsIP(nets []*net.IPNet, ip net.IP) bool {
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// extractIP extracts the client IP from the request
// Handles X-Forwarded-For header if behind proxy
func extractIP(c *gin.Context) net.IP {
	return net.ParseIP(getClientIP(c))
}
