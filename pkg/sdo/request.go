package sdo

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/brutella/can"
)

// Client command specifiers, CiA 301
const (
	ccsDownloadInitiate = 1
	ccsUploadInitiate   = 2
)

const (
	sizeIndicated     = 1 << 0
	transferExpedited = 1 << 1
)

// NewRequestFrame builds the initiate frame a client would send to the
// SDO server of nodeId for this request.
//   - upload : initiate upload
//   - download of 1 to 4 bytes : expedited download with size indicated
//   - download of more bytes : segmented download initiate, size in bytes 4..7
func NewRequestFrame(nodeId uint8, index uint16, subindex uint8, direction Direction, data []byte) (can.Frame, error) {
	if nodeId < 1 || nodeId > 127 {
		return can.Frame{}, ErrInvalidNodeId
	}
	frame := can.Frame{ID: uint32(ClientBaseId) + uint32(nodeId), Length: 8}
	binary.LittleEndian.PutUint16(frame.Data[1:3], index)
	frame.Data[3] = subindex

	switch direction {
	case Upload:
		frame.Data[0] = ccsUploadInitiate << 5
	case Download:
		switch {
		case len(data) == 0:
			return can.Frame{}, ErrEmptyDownload
		case len(data) <= 4:
			unused := byte(4 - len(data))
			frame.Data[0] = ccsDownloadInitiate<<5 | unused<<2 | transferExpedited | sizeIndicated
			copy(frame.Data[4:], data)
		default:
			frame.Data[0] = ccsDownloadInitiate<<5 | sizeIndicated
			binary.LittleEndian.PutUint32(frame.Data[4:], uint32(len(data)))
		}
	default:
		return can.Frame{}, ErrInvalidDirection
	}
	return frame, nil
}

// FormatFrame renders a frame as "601 [8] 40 01 20 00 00 00 00 00"
func FormatFrame(frame can.Frame) string {
	length := int(frame.Length)
	if length > len(frame.Data) {
		length = len(frame.Data)
	}
	data := make([]string, 0, length)
	for _, b := range frame.Data[:length] {
		data = append(data, fmt.Sprintf("%02X", b))
	}
	return fmt.Sprintf("%03X [%d] %s", frame.ID, frame.Length, strings.Join(data, " "))
}
