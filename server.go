package mcnet

import (
	"io"
	"net"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/gstoney/mcnet/packet"
	"github.com/gstoney/mcnet/registry"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrNotHandshake  = errors.New("first packet is not a handshake")
	ErrUnknownIntent = errors.New("unknown handshake intent")
)

// Accept failures back off between these bounds.
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// A Server defines parameters for running a Minecraft server.
type Server struct {
	Addr string

	// DefaultProtocol decodes the handshake and serves clients whose
	// protocol the registry does not support.
	DefaultProtocol int32
	Registry        *registry.Registry
	Transport       TransportConfig
	Codec           CodecConfig

	SessionHandler SessionHandler
	Log            zerolog.Logger
}

// SessionHandler takes over a connection once the handshake has been read.
// The Conn is already in the Status or Login state with the client's packet
// map, or the default map when Session.Supported is false.
type SessionHandler func(s *Session, c *Conn) error

// A Session stores connection and states of a client.
type Session struct {
	LocalAddr  net.Addr
	RemoteAddr net.Addr

	Handshake packet.Handshake
	// Supported is false when the registry has no packets for the client's
	// protocol.
	Supported bool

	Name       string
	PlayerUUID uuid.UUID
}

func NewServer(cfg Config, reg *registry.Registry, h SessionHandler, log zerolog.Logger) *Server {
	return &Server{
		Addr:            cfg.Addr,
		DefaultProtocol: cfg.DefaultProtocol,
		Registry:        reg,
		Transport:       cfg.Transport,
		Codec:           cfg.Codec,
		SessionHandler:  h,
		Log:             log,
	}
}

func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return errors.Wrap(err, "listen")
	}
	defer l.Close()

	s.Log.Info().Str("addr", l.Addr().String()).Msg("listening")
	return s.Serve(l)
}

// Serve accepts incoming connections on the Listener l,
// creating a new goroutine for each.
// The goroutines read the handshake and pass the connection to
// SessionHandler. Serve returns nil once l is closed.
func (s *Server) Serve(l net.Listener) error {
	if _, err := s.Registry.Load(s.DefaultProtocol); err != nil {
		return errors.Wrap(err, "load default protocol")
	}

	var delay time.Duration
	for {
		c, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			if delay == 0 {
				delay = minAcceptDelay
			} else if delay *= 2; delay > maxAcceptDelay {
				delay = maxAcceptDelay
			}
			s.Log.Error().Err(err).Dur("retry_in", delay).Msg("failed to accept connection")
			time.Sleep(delay)
			continue
		}
		delay = 0

		go s.serveConn(c)
	}
}

func (s *Server) serveConn(nc net.Conn) {
	defer nc.Close()

	log := s.Log.With().Str("remote", nc.RemoteAddr().String()).Logger()

	defer func() {
		if v := recover(); v != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetTag("remote", nc.RemoteAddr().String())
			hub.Recover(v)
			hub.Flush(5 * time.Second)
			log.Error().Interface("panic", v).Msg("session handler panicked")
		}
	}()

	session, c, err := s.establish(nc, log)
	if err != nil {
		log.Debug().Err(err).Msg("handshake failed")
		return
	}

	if err := s.SessionHandler(session, c); err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).
			Stringer("state", c.State()).
			Int32("protocol", session.Handshake.ProtocolVersion).
			Msg("session ended with error")
	}
}

func (s *Server) establish(nc net.Conn, log zerolog.Logger) (*Session, *Conn, error) {
	def, err := s.Registry.Load(s.DefaultProtocol)
	if err != nil {
		return nil, nil, err
	}

	c := NewConn(NewTransport(nc, nc, s.Transport), def, s.Codec, log)

	p, err := c.ReadPacket()
	if err != nil {
		return nil, nil, err
	}
	hs, ok := p.(*packet.Handshake)
	if !ok {
		return nil, nil, errors.Wrapf(ErrNotHandshake, "got %T", p)
	}
	next, ok := hs.NextState()
	if !ok {
		return nil, nil, errors.Wrapf(ErrUnknownIntent, "%d", hs.Intent)
	}
	c.SetState(next)

	session := &Session{
		LocalAddr:  nc.LocalAddr(),
		RemoteAddr: nc.RemoteAddr(),
		Handshake:  *hs,
		Supported:  true,
	}

	m, err := s.Registry.Load(hs.ProtocolVersion)
	switch {
	case err == nil:
		c.SetPackets(m)
	case errors.Is(err, registry.ErrUnsupportedProtocol):
		session.Supported = false
	default:
		return nil, nil, err
	}

	log.Debug().
		Int32("protocol", hs.ProtocolVersion).
		Bool("supported", session.Supported).
		Stringer("state", next).
		Msg("handshake")
	return session, c, nil
}
