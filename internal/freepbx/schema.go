// Package freepbx models the FreePBX Bulk Extensions export: the fixed
// positional column schema, the Extension record bound to it, and the
// validator that classifies raw rows into accepted and rejected sequences.
package freepbx

// Columns is the positional column schema of the Bulk Extensions CSV. Rows are
// bound to it by position, not by header name; the export's header row is
// accepted as-is and discarded.
var Columns = []string{
	"action",
	"extension",
	"name",
	"cid_masquerade",
	"sipname",
	"outboundcid",
	"ringtimer",
	"callwaiting",
	"call_screen",
	"pinless",
	"password",
	"noanswer_dest",
	"noanswer_cid",
	"busy_dest",
	"busy_cid",
	"chanunavail_dest",
	"chanunavail_cid",
	"emergency_cid",
	"tech",
	"hardware",
	"devinfo_channel",
	"devinfo_secret",
	"devinfo_notransfer",
	"devinfo_dtmfmode",
	"devinfo_canreinvite",
	"devinfo_context",
	"devinfo_immediate",
	"devinfo_signalling",
	"devinfo_echocancel",
	"devinfo_echocancelwhenbrdiged",
	"devinfo_echotraining",
	"devinfo_busydetect",
	"devinfo_busycount",
	"devinfo_callprogress",
	"devinfo_host",
	"devinfo_type",
	"devinfo_nat",
	"devinfo_port",
	"devinfo_qualify",
	"devinfo_callgroup",
	"devinfo_pickupgroup",
	"devinfo_disallow",
	"devinfo_allow",
	"devinfo_dial",
	"devinfo_accountcode",
	"devinfo_mailbox",
	"devinfo_deny",
	"devinfo_permit",
	"devicetype",
	"deviceid",
	"deviceuser",
	"description",
	"dictenabled",
	"dictformat",
	"dictemail",
	"langcode",
	"record_in",
	"record_out",
	"vm",
	"vmpwd",
	"email",
	"pager",
	"attach",
	"saycid",
	"envelope",
	"delete",
	"options",
	"vmcontext",
	"vmx_state",
	"vmx_unavail_enabled",
	"vmx_busy_enabled",
	"vmx_play_instructions",
	"vmx_option_0_sytem_default",
	"vmx_option_0_number",
	"vmx_option_1_system_default",
	"vmx_option_1_number",
	"vmx_option_2_number",
	"account",
	"ddial",
	"pre_ring",
	"strategy",
	"grptime",
	"grplist",
	"annmsg_id",
	"ringing",
	"grppre",
	"dring",
	"needsconf",
	"remotealert_id",
	"toolate_id",
	"postdest",
	"faxenabled",
	"faxemail",
}

var colIndex = buildIndex()

func buildIndex() map[string]int {
	idx := make(map[string]int, len(Columns))
	for i, name := range Columns {
		idx[name] = i
	}
	return idx
}

// ColumnIndex returns the position of a named input column, or false when the
// name is not part of the schema.
func ColumnIndex(name string) (int, bool) {
	i, ok := colIndex[name]
	return i, ok
}
