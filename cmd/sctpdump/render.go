package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/zsiec/sctpwire/sctp"
)

// renderPacket prints one decoded packet as a tree.
func renderPacket(path string, p *sctp.Packet, cfg config) {
	root := pterm.TreeNode{
		Text: fmt.Sprintf("%s  src=%d dst=%d tag=0x%08X", path,
			p.SourcePort, p.DestinationPort, p.VerificationTag),
	}
	for _, c := range p.Chunks {
		root.Children = append(root.Children, chunkNode(c))
	}
	if cfg.ShowNotices {
		for _, n := range p.Notices {
			root.Children = append(root.Children, pterm.TreeNode{
				Text: fmt.Sprintf("skipped %v flags=0x%02X (%d bytes)", n.RawType, n.Flags, len(n.Value)),
			})
		}
	}
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func chunkNode(c sctp.Chunk) pterm.TreeNode {
	n := pterm.TreeNode{Text: c.Type().String()}
	switch c := c.(type) {
	case *sctp.Data:
		n.Text = fmt.Sprintf("%v tsn=%d stream=%d seq=%d ppid=%d %s (%d bytes)",
			c.Type(), c.TSN, c.StreamID, c.StreamSequence, c.PayloadProtocolID,
			dataFlags(c), len(c.UserData))
	case *sctp.Init:
		n.Text = fmt.Sprintf("%v tag=0x%08X rwnd=%d out=%d in=%d tsn=%d",
			c.Type(), c.InitiateTag, c.AdvertisedWindow,
			c.OutboundStreams, c.InboundStreams, c.InitialTSN)
		n.Children = paramNodes(c.Params)
	case *sctp.InitAck:
		n.Text = fmt.Sprintf("%v tag=0x%08X rwnd=%d out=%d in=%d tsn=%d",
			c.Type(), c.InitiateTag, c.AdvertisedWindow,
			c.OutboundStreams, c.InboundStreams, c.InitialTSN)
		n.Children = paramNodes(c.Params)
	case *sctp.Sack:
		n.Text = fmt.Sprintf("%v cum=%d rwnd=%d gaps=%d dups=%d",
			c.Type(), c.CumulativeTSNAck, c.AdvertisedWindow,
			len(c.GapAckBlocks), len(c.DuplicateTSNs))
		for _, b := range c.GapAckBlocks {
			n.Children = append(n.Children, pterm.TreeNode{
				Text: fmt.Sprintf("gap %d-%d", b.Start, b.End),
			})
		}
	case *sctp.Heartbeat:
		n.Text = fmt.Sprintf("%v info=%d bytes", c.Type(), len(c.Info))
	case *sctp.HeartbeatAck:
		n.Text = fmt.Sprintf("%v info=%d bytes", c.Type(), len(c.Info))
	case *sctp.Abort:
		n.Text = fmt.Sprintf("%v t=%v", c.Type(), c.TBit)
		for _, cause := range c.Causes {
			n.Children = append(n.Children, pterm.TreeNode{
				Text: fmt.Sprintf("cause: %v (%d bytes)", cause.Code, len(cause.Detail)),
			})
		}
	case *sctp.OperationError:
		for _, cause := range c.Causes {
			n.Children = append(n.Children, pterm.TreeNode{
				Text: fmt.Sprintf("cause: %v (%d bytes)", cause.Code, len(cause.Detail)),
			})
		}
	case *sctp.Shutdown:
		n.Text = fmt.Sprintf("%v cum=%d", c.Type(), c.CumulativeTSNAck)
	case *sctp.ShutdownComplete:
		n.Text = fmt.Sprintf("%v t=%v", c.Type(), c.TBit)
	case *sctp.CookieEcho:
		n.Text = fmt.Sprintf("%v cookie=%d bytes", c.Type(), len(c.Cookie))
	case *sctp.Reconfig:
		n.Children = paramNodes(c.Params)
	case *sctp.ForwardTSN:
		n.Text = fmt.Sprintf("%v cum=%d streams=%d", c.Type(), c.NewCumulativeTSN, len(c.Entries))
	}
	return n
}

func dataFlags(d *sctp.Data) string {
	flags := make([]byte, 0, 4)
	if d.Unordered {
		flags = append(flags, 'U')
	}
	if d.Beginning {
		flags = append(flags, 'B')
	}
	if d.Ending {
		flags = append(flags, 'E')
	}
	if d.Immediate {
		flags = append(flags, 'I')
	}
	if len(flags) == 0 {
		return "-"
	}
	return string(flags)
}

func paramNodes(params []sctp.Param) []pterm.TreeNode {
	nodes := make([]pterm.TreeNode, 0, len(params))
	for _, p := range params {
		nodes = append(nodes, paramNode(p))
	}
	return nodes
}

func paramNode(p sctp.Param) pterm.TreeNode {
	text := p.Type().String()
	switch p := p.(type) {
	case *sctp.IPv4Address:
		text = fmt.Sprintf("%v: %d.%d.%d.%d", p.Type(), p.Addr[0], p.Addr[1], p.Addr[2], p.Addr[3])
	case *sctp.IPv6Address:
		text = fmt.Sprintf("%v: %x", p.Type(), p.Addr)
	case *sctp.HostName:
		text = fmt.Sprintf("%v: %q", p.Type(), p.Name)
	case *sctp.CookiePreservative:
		text = fmt.Sprintf("%v: %dms", p.Type(), p.LifeSpanIncrement)
	case *sctp.StateCookie:
		text = fmt.Sprintf("%v: %d bytes", p.Type(), len(p.Cookie))
	case *sctp.SupportedAddressTypes:
		text = fmt.Sprintf("%v: %v", p.Type(), p.Types)
	case *sctp.SupportedExtensions:
		text = fmt.Sprintf("%v: %v", p.Type(), p.ChunkTypes)
	case *sctp.OutgoingResetRequest:
		text = fmt.Sprintf("%v: req=%d resp=%d last=%d streams=%v",
			p.Type(), p.RequestSequence, p.ResponseSequence, p.LastAssignedTSN, p.StreamIDs)
	case *sctp.ReconfigResponse:
		text = fmt.Sprintf("%v: resp=%d result=%d", p.Type(), p.ResponseSequence, p.Result)
	case *sctp.UnknownParam:
		text = fmt.Sprintf("%v: %d bytes", p.Type(), len(p.Value))
	}
	return pterm.TreeNode{Text: text}
}
