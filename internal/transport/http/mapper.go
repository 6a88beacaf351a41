package http

import (
	"encoding/json"

	"github.com/chatterbox-im/chatterbox-server/internal/core"
	"github.com/chatterbox-im/chatterbox-server/internal/proto"
)

// dispatchInbound decodes one client event and routes it to the matching
// mutation handler. A proto.Error result is reported back to the client; a
// plain error means the frame was malformed and the connection should drop.
func dispatchInbound(h *core.Handlers, inbound proto.Inbound, ack core.AckFunc) (*proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeNewMessage:
		var data proto.NewMessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.PostMessage(data.Text, data.Channel, ack)
	case proto.InboundTypeNewChannel:
		var data proto.NewChannelData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.CreateChannel(data.Name, ack)
	case proto.InboundTypeRemoveChannel:
		var data proto.RemoveChannelData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.RemoveChannel(data.ID.Int64(), ack)
	case proto.InboundTypeRenameChannel:
		var data proto.RenameChannelData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.RenameChannel(data.ID.Int64(), data.Name, ack)
	default:
		return &proto.Error{Code: "invalid_message", Msg: "unknown event type"}, nil
	}

	return nil, nil
}

func ackToOutbound(id *int64, a core.Ack) proto.Outbound {
	ack := proto.Ack{Status: a.Status}
	if ch, ok := a.Data.(core.Channel); ok {
		ack.Data = channelToProto(ch)
	}
	return proto.Outbound{Type: proto.OutboundTypeAck, ID: id, Data: ack}
}

func eventToOutbound(ev core.Event) proto.Outbound {
	out := proto.Outbound{Type: proto.OutboundTypeEvent, Event: ev.Name}

	switch payload := ev.Payload.(type) {
	case []core.Message:
		out.Data = messagesToProto(payload)
	case core.Channel:
		out.Data = channelToProto(payload)
	case core.ChannelRef:
		out.Data = proto.ChannelRef{ID: payload.ID}
	default:
		out.Data = payload
	}

	return out
}

func channelToProto(ch core.Channel) proto.Channel {
	return proto.Channel{
		ID:        ch.ID,
		Name:      ch.Name,
		Removable: ch.Removable,
	}
}

func messageToProto(m core.Message) proto.Message {
	return proto.Message{
		ID:      m.ID,
		Message: m.Text,
		Channel: m.Channel,
	}
}

func messagesToProto(messages []core.Message) []proto.Message {
	out := make([]proto.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, messageToProto(m))
	}
	return out
}

func channelsToProto(channels []core.Channel) []proto.Channel {
	out := make([]proto.Channel, 0, len(channels))
	for _, ch := range channels {
		out = append(out, channelToProto(ch))
	}
	return out
}

func snapshotToProto(s core.Snapshot) proto.DataResponse {
	return proto.DataResponse{
		Channels:         channelsToProto(s.Channels),
		Messages:         messagesToProto(s.Messages),
		CurrentChannelID: s.CurrentChannelID,
	}
}
