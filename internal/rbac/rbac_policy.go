package rbac

// Resources and actions guarded by the API.
const (
	ResourceLeave          = "leave"
	ResourceWFH            = "wfh"
	ResourceApproval       = "approval"
	ResourceBalance        = "balance"
	ResourceHoliday        = "holiday"
	ResourceEmployee       = "employee"
	ResourceAudit          = "audit"
	ResourceReconciliation = "reconciliation"

	ActionCreate  = "create"
	ActionRead    = "read"
	ActionUpdate  = "update"
	ActionCancel  = "cancel"
	ActionApprove = "approve"
	ActionRun     = "run"
)

var selfService = []RolePermissionRow{
	{Resource: ResourceLeave, Action: ActionCreate},
	{Resource: ResourceLeave, Action: ActionRead},
	{Resource: ResourceLeave, Action: ActionCancel},
	{Resource: ResourceWFH, Action: ActionCreate},
	{Resource: ResourceWFH, Action: ActionRead},
	{Resource: ResourceWFH, Action: ActionCancel},
	{Resource: ResourceBalance, Action: ActionRead},
	{Resource: ResourceHoliday, Action: ActionRead},
}

var approverExtras = []RolePermissionRow{
	{Resource: ResourceApproval, Action: ActionApprove},
	{Resource: ResourceApproval, Action: ActionRead},
	{Resource: ResourceEmployee, Action: ActionRead},
}

var hrExtras = []RolePermissionRow{
	{Resource: ResourceHoliday, Action: ActionCreate},
	{Resource: ResourceEmployee, Action: ActionCreate},
	{Resource: ResourceEmployee, Action: ActionUpdate},
	{Resource: ResourceAudit, Action: ActionRead},
	{Resource: ResourceReconciliation, Action: ActionRun},
}

// DefaultPolicy is used when role_permissions is empty.
func DefaultPolicy() []RolePermissionRow {
	var rows []RolePermissionRow
	add := func(role string, sets ...[]RolePermissionRow) {
		for _, set := range sets {
			for _, p := range set {
				rows = append(rows, RolePermissionRow{Role: role, Resource: p.Resource, Action: p.Action})
			}
		}
	}
	add("EMPLOYEE", selfService)
	add("MANAGER", selfService, approverExtras)
	add("EXECUTIVE", selfService, approverExtras)
	add("HR", selfService, approverExtras, hrExtras)
	return rows
}
