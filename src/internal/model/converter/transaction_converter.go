package converter

import (
	"momovender/src/internal/entity"
	"momovender/src/internal/model"
)

// activityActions humanizes the transaction type for the activity feed.
var activityActions = map[string]string{
	"deposit":      "received deposit",
	"withdraw":     "sent withdrawal",
	"topup":        "bought airtime",
	"registration": "SIM registration",
	"contribution": "susu contribution",
}

func ActivityToItem(r *entity.ActivityRow) model.ActivityItem {
	action, ok := activityActions[r.Type]
	if !ok {
		action = "transaction"
	}

	name := r.CustomerName
	if name == "" {
		name = "Customer"
	}

	return model.ActivityItem{
		Name:    name,
		Action:  action,
		Amount:  r.Amount.Round(2).InexactFloat64(),
		Service: r.Service,
		Network: r.Network,
		Time:    r.CreatedAt.Format("15:04"),
	}
}

func ActivitiesToItems(rows []entity.ActivityRow) []model.ActivityItem {
	items := make([]model.ActivityItem, 0, len(rows))
	for i := range rows {
		items = append(items, ActivityToItem(&rows[i]))
	}
	return items
}
