package directory

import (
	"context"
	"net"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// LDAPDialer opens real LDAP connections with a bounded dial budget.
type LDAPDialer struct {
	dialTimeout time.Duration
}

var _ Dialer = (*LDAPDialer)(nil)

// NewLDAPDialer returns a dialer whose TCP connect phase is bounded by
// dialTimeout.
func NewLDAPDialer(dialTimeout time.Duration) *LDAPDialer {
	if dialTimeout <= 0 {
		dialTimeout = defaultTimeout
	}
	return &LDAPDialer{dialTimeout: dialTimeout}
}

// Dial connects to the directory at url. The context is accepted for
// interface symmetry; the dial budget itself is enforced by the underlying
// net.Dialer since the LDAP handshake does not take a context.
func (d *LDAPDialer) Dial(_ context.Context, url string) (Conn, error) {
	conn, err := ldap.DialURL(url, ldap.DialWithDialer(&net.Dialer{Timeout: d.dialTimeout}))
	if err != nil {
		return nil, err
	}
	return &ldapConn{conn: conn}, nil
}

// ldapConn adapts *ldap.Conn to the Conn interface.
type ldapConn struct {
	conn *ldap.Conn
}

var _ Conn = (*ldapConn)(nil)

func (c *ldapConn) Bind(username, password string) error {
	return c.conn.Bind(username, password)
}

func (c *ldapConn) Search(req SearchRequest) ([]Entry, error) {
	res, err := c.conn.Search(ldap.NewSearchRequest(
		req.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		req.SizeLimit,
		0,
		false,
		req.Filter,
		req.Attributes,
		nil,
	))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(res.Entries))
	for _, e := range res.Entries {
		attrs := make(map[string][]string, len(e.Attributes))
		for _, attr := range e.Attributes {
			attrs[attr.Name] = attr.Values
		}
		entries = append(entries, Entry{DN: e.DN, Attributes: attrs})
	}
	return entries, nil
}

func (c *ldapConn) SetTimeout(d time.Duration) {
	c.conn.SetTimeout(d)
}

func (c *ldapConn) Close() error {
	return c.conn.Close()
}
