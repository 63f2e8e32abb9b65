package v757

import (
	"github.com/google/uuid"
	"github.com/gstoney/mcnet/packet"
)

// @gen:r,regserver
type LoginStart struct {
	Name string `field:"String"`
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
	MessageID  int32  `field:"VarInt"`
	Successful bool   `field:"Boolean"`
	Data       []byte `field:"RemainingBytes"`
}

func (p LoginPluginResponse) ID() int32 {
	return 0x02
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
}

func (p EncryptionRequest) ID() int32 {
	return 0x01
}

// @gen:w,regclient
type LoginSuccess struct {
	UUID     uuid.UUID `field:"UUID"`
	Username string    `field:"String"`
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
