package v757

import (
	"github.com/google/uuid"
	"github.com/gstoney/mcnet/packet"
)

// @gen:r,regserver
type QueryBlockNBT struct {
	TransactionID int32           `field:"VarInt"`
	Location      packet.Position `field:"Position"`
}

func (p QueryBlockNBT) ID() int32 {
	return 0x01
}

// @gen:r,regserver
type SetDifficulty struct {
	Difficulty byte `field:"Byte"`
}

func (p SetDifficulty) ID() int32 {
	return 0x02
}

// @gen:r,regserver
type ChatMessageServerbound struct {
	Message string `field:"String"` // at most 256 characters, may be a command
}

func (p ChatMessageServerbound) ID() int32 {
	return 0x03
}

// @gen:r,regserver
type TabComplete struct {
	TransactionID int32  `field:"VarInt"`
	Text          string `field:"String"`
}

func (p TabComplete) ID() int32 {
	return 0x06
}

// @gen:r,regserver
type PluginMessageServerbound struct {
	Channel string `field:"String"`
	Data    []byte `field:"RemainingBytes"`
}

func (p PluginMessageServerbound) ID() int32 {
	return 0x0A
}

// @gen:r,regserver
type KeepAliveServerbound struct {
	KeepAliveID int64 `field:"Long"`
}

func (p KeepAliveServerbound) ID() int32 {
	return 0x0F
}

// @gen:r,regserver
type LockDifficulty struct {
	Locked bool `field:"Boolean"`
}

func (p LockDifficulty) ID() int32 {
	return 0x10
}

// @gen:r,regserver
type PlayerDigging struct {
	Status   int32           `field:"VarInt"`
	Location packet.Position `field:"Position"`
	Face     int8            `field:"SignedByte"`
}

func (p PlayerDigging) ID() int32 {
	return 0x1A
}

// @gen:r,regserver
type CreativeInventoryAction struct {
	SlotIndex   int16       `field:"Short"`
	ClickedItem packet.Slot `field:"Slot"`
}

func (p CreativeInventoryAction) ID() int32 {
	return 0x28
}

// Hands.
const (
	HandMain int32 = 0
	HandOff  int32 = 1
)

// @gen:r,regserver
type PlayerBlockPlacement struct {
	Hand        int32           `field:"VarInt"`
	Location    packet.Position `field:"Position"`
	Face        packet.Facing   `field:"Facing"`
	CursorX     float32         `field:"Float"`
	CursorY     float32         `field:"Float"`
	CursorZ     float32         `field:"Float"`
	InsideBlock bool            `field:"Boolean"`
}

func (p PlayerBlockPlacement) ID() int32 {
	return 0x2E
}

// @gen:w,regclient
type BlockEntityData struct {
	Location packet.Position `field:"Position"`
	Type     int32           `field:"VarInt"`
	Data     packet.NBT      `field:"NBT"` // nil removes the block entity
}

func (p BlockEntityData) ID() int32 {
	return 0x0A
}

// @gen:w,regclient
type BlockChange struct {
	Location packet.Position `field:"Position"`
	BlockID  int32           `field:"VarInt"`
}

func (p BlockChange) ID() int32 {
	return 0x0C
}

// @gen:w,regclient
type ServerDifficulty struct {
	Difficulty byte `field:"Byte"`
	Locked     bool `field:"Boolean"`
}

func (p ServerDifficulty) ID() int32 {
	return 0x0E
}

// Chat positions.
const (
	ChatPositionChat     byte = 0
	ChatPositionSystem   byte = 1
	ChatPositionGameInfo byte = 2
)

// @gen:w,regclient
type ChatMessageClientbound struct {
	Message  packet.Chat `field:"Chat"`
	Position byte        `field:"Byte"`
	Sender   uuid.UUID   `field:"UUID"`
}

func (p ChatMessageClientbound) ID() int32 {
	return 0x0F
}

// @gen:w,regclient
type PluginMessageClientbound struct {
	Channel string `field:"String"`
	Data    []byte `field:"RemainingBytes"`
}

func (p PluginMessageClientbound) ID() int32 {
	return 0x18
}

// @gen:w,regclient
type PlayDisconnect struct {
	Reason packet.Chat `field:"Chat"`
}

func (p PlayDisconnect) ID() int32 {
	return 0x1A
}

// @gen:w,regclient
type KeepAliveClientbound struct {
	KeepAliveID int64 `field:"Long"`
}

func (p KeepAliveClientbound) ID() int32 {
	return 0x21
}

// @gen:w,regclient
type EntityHeadLook struct {
	EntityID int32        `field:"VarInt"`
	HeadYaw  packet.Angle `field:"Angle"`
}

func (p EntityHeadLook) ID() int32 {
	return 0x3E
}

// @gen:w,regclient
type NBTQueryResponse struct {
	TransactionID int32      `field:"VarInt"`
	NBT           packet.NBT `field:"NBT"`
}

func (p NBTQueryResponse) ID() int32 {
	return 0x60
}
