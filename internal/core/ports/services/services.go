package services

// ServiceContainer holds all service facades needed by the HTTP layer.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Report      ReportSvcFacade
	Client      ClientSvcFacade
}
