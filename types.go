package optdoc

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
)

// Marshaler is implemented by option targets that parse themselves from
// text. RequiresExplicitValue reports whether the value must be attached
// with = rather than taken from the next token.
type Marshaler interface {
	Marshal(in string) error
	RequiresExplicitValue() bool
}

func init() {
	RegisterParser("duration", func(s string) (interface{}, error) {
		return time.ParseDuration(s)
	})
	RegisterParser("ip", func(s string) (interface{}, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, userError{fmt.Sprintf("cannot parse %q as IP address", s)}
		}
		return ip, nil
	})
	RegisterParser("tcp-addr", func(s string) (interface{}, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	RegisterParser("url", func(s string) (interface{}, error) {
		return url.Parse(s)
	})
}

// Duration declares a time.Duration option bound to p.
func Duration(field string, p *time.Duration) *Option {
	o := Custom(field, "duration", func(v interface{}) { *p = v.(time.Duration) })
	if *p != 0 {
		o.setDefault(p.String())
	}
	return o
}

// IP declares a net.IP option bound to p.
func IP(field string, p *net.IP) *Option {
	o := Custom(field, "ip", func(v interface{}) { *p = v.(net.IP) })
	if *p != nil {
		o.setDefault(p.String())
	}
	return o
}

// TCPAddr declares a *net.TCPAddr option bound to p. The value must be
// given as --name=addr, since a bare address token can look like another
// option.
func TCPAddr(field string, p **net.TCPAddr) *Option {
	o := Custom(field, "tcp-addr", func(v interface{}) { *p = v.(*net.TCPAddr) })
	o.explicitOnly = true
	if *p != nil {
		o.setDefault((*p).String())
	}
	return o
}

// URL declares a *url.URL option bound to p.
func URL(field string, p **url.URL) *Option {
	o := Custom(field, "url", func(v interface{}) { *p = v.(*url.URL) })
	if *p != nil {
		o.setDefault((*p).String())
	}
	return o
}

// Bytes marshals human readable byte quantities, for example 100GB. See
// https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var _ Marshaler = (*Bytes)(nil)

func (me *Bytes) Marshal(s string) (err error) {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return
	}
	*me = Bytes(ui64)
	return
}

func (*Bytes) RequiresExplicitValue() bool {
	return false
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}

// BytesOpt declares a Bytes option bound to p.
func BytesOpt(field string, p *Bytes) *Option {
	o := Var(field, "bytes", p)
	if *p != 0 {
		o.setDefault(p.String())
	}
	return o
}
