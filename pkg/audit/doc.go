// Package audit records changes made to the safetynet collections.
//
// Every add, update or delete of a person, firestation mapping or medical
// record produces a MutationEvent, written as an RFC5424 syslog line:
//
//	<PRI>1 TIMESTAMP HOSTNAME safetynet PROCID MSGID [SD] MSG
//
// Auditing can be switched off with SAFETYNET_AUDIT_ENABLED=false.
//
// # Usage
//
//	logger := audit.NewLogger(os.Stdout)
//	logger.Log(audit.MutationEvent{
//		Collection: model.CollectionPerson,
//		Action:     audit.ActionAdd,
//		Key:        "John Boyd",
//		Result:     audit.ResultSuccess,
//	})
package audit
