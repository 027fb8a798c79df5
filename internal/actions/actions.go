package actions

import (
	"github.com/ethanbaker/highlevel/internal/actions/common"
	action_getcalendarfreeslots "github.com/ethanbaker/highlevel/internal/actions/get-calendar-free-slots"
	action_sendnewmessage "github.com/ethanbaker/highlevel/internal/actions/send-new-message"
	"github.com/ethanbaker/highlevel/pkg/action"
)

// NewRegistry registers every HighLevel action bound to app
func NewRegistry(app common.App) (*action.Registry, error) {
	reg := action.NewRegistry()

	err := reg.Register(
		action_getcalendarfreeslots.New(app),
		action_sendnewmessage.New(app),
	)
	if err != nil {
		return nil, err
	}

	return reg, nil
}
