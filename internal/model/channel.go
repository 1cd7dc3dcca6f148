package model

import (
	"errors"
	"fmt"
)

// Channel is the medium a transaction went through.
type Channel string

const (
	ChannelTransfer       Channel = "transfer"
	ChannelInternet       Channel = "internet"
	ChannelCard           Channel = "card"
	ChannelATM            Channel = "atm"
	ChannelPartnerATM     Channel = "partner-atm"
	ChannelInterest       Channel = "interest"
	ChannelOpenBanking    Channel = "open-banking"
	ChannelMobileBank     Channel = "mobile-bank"
	ChannelFirmBanking    Channel = "firm-banking"
	ChannelAutoDebit      Channel = "auto-debit"
	ChannelPaymentGateway Channel = "payment-gateway"
	ChannelMobile         Channel = "mobile"
)

// ErrUnknownChannel is returned for export keywords with no Channel.
var ErrUnknownChannel = errors.New("unknown channel keyword")

// channelKeywords maps the bank export's channel column to a Channel.
var channelKeywords = map[string]Channel{
	"대체":    ChannelTransfer,
	"인터넷":   ChannelInternet,
	"BC":    ChannelCard,
	"C/D":   ChannelATM,
	"CD공동":  ChannelPartnerATM,
	"예금이자":  ChannelInterest,
	"오픈뱅킹":  ChannelOpenBanking,
	"IM뱅크":  ChannelMobileBank,
	"펌뱅킹":   ChannelFirmBanking,
	"모바일":   ChannelMobile,
	"자동이체":  ChannelAutoDebit,
	"P/G결제": ChannelPaymentGateway,
}

// ParseChannel decodes an export channel keyword.
func ParseChannel(keyword string) (Channel, error) {
	c, ok := channelKeywords[keyword]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, keyword)
	}
	return c, nil
}

// IsATM reports whether the channel is a cash machine, own bank or partner.
func (c Channel) IsATM() bool {
	return c == ChannelATM || c == ChannelPartnerATM
}
