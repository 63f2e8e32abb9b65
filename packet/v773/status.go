package v773

// @gen:r,regserver
type StatusRequest struct{}

func (p StatusRequest) ID() int32 {
	return 0x00
}

// @gen:r,regserver
type PingRequest struct {
	Payload int64 `field:"Long"`
}

func (p PingRequest) ID() int32 {
	return 0x01
}

// @gen:w,regclient
type StatusResponse struct {
	Response string `field:"String"` // JSON encoded packet.StatusInfo
}

func (p StatusResponse) ID() int32 {
	return 0x00
}

// @gen:w,regclient
type PongResponse struct {
	Payload int64 `field:"Long"`
}

func (p PongResponse) ID() int32 {
	return 0x01
}
