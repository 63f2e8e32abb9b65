package v773

import (
	"io"

	"github.com/google/uuid"
	"github.com/gstoney/mcnet/packet"
)

// @gen:r,regserver
type LoginStart struct {
	Name       string    `field:"String"`
	PlayerUUID uuid.UUID `field:"UUID"`
}

func (p LoginStart) ID() int32 {
	return 0x00
}

// @gen:r,regserver
type EncryptionResponse struct {
	SharedSecret []byte `field:"ByteArray"`
	VerifyToken  []byte `field:"ByteArray"`
}

func (p EncryptionResponse) ID() int32 {
	return 0x01
}

// @gen:r,regserver
type LoginPluginResponse struct {
	MessageID int32  `field:"VarInt"`
	Data      []byte `field:"RemainingBytes"` // empty when the client did not understand the request
}

func (p LoginPluginResponse) ID() int32 {
	return 0x02
}

// @gen:r,regserver
type LoginAcknowledged struct{}

func (p LoginAcknowledged) ID() int32 {
	return 0x03
}

// @gen:w,regclient
type LoginDisconnect struct {
	Reason packet.Chat `field:"Chat"`
}

func (p LoginDisconnect) ID() int32 {
	return 0x00
}

// @gen:w,regclient
type EncryptionRequest struct {
	ServerID    string `field:"String"`
	PublicKey   []byte `field:"ByteArray"`
	VerifyToken []byte `field:"ByteArray"`
	ShouldAuth  bool   `field:"Boolean"`
}

func (p EncryptionRequest) ID() int32 {
	return 0x01
}

type GameProfileProperty struct {
	Name      string
	Value     string
	Signature packet.Optional[string]
}

func writeGameProfileProperty(w io.Writer, v GameProfileProperty) (err error) {
	if err = packet.WriteString(w, v.Name); err != nil {
		return
	}
	if err = packet.WriteString(w, v.Value); err != nil {
		return
	}
	err = packet.WriteOptional(w, v.Signature, packet.WriteString)
	return
}

func readGameProfileProperty(r *packet.Buffer) (v GameProfileProperty, err error) {
	v.Name, err = packet.ReadString(r)
	if err != nil {
		return
	}
	v.Value, err = packet.ReadString(r)
	if err != nil {
		return
	}
	v.Signature, err = packet.ReadOptional(r, packet.ReadString)
	return
}

// @gen:w,regclient
type LoginSuccess struct {
	UUID       uuid.UUID             `field:"UUID"`
	Username   string                `field:"String"`
	Properties []GameProfileProperty `field:"PrefixedArray" write:"writeGameProfileProperty" read:"readGameProfileProperty"`
}

func (p LoginSuccess) ID() int32 {
	return 0x02
}

// @gen:w,regclient
type SetCompression struct {
	Threshold int32 `field:"VarInt"`
}

func (p SetCompression) ID() int32 {
	return 0x03
}

// @gen:w,regclient
type LoginPluginRequest struct {
	MessageID int32  `field:"VarInt"`
	Channel   string `field:"String"`
	Data      []byte `field:"RemainingBytes"`
}

func (p LoginPluginRequest) ID() int32 {
	return 0x04
}
