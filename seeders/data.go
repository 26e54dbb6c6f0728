package seeders

import (
	"fiber-service/internal/entities"
	"fiber-service/pkg/constants"
)

var clientsData = []entities.Client{
	{Name: "João Silva", Phone: "+5511999991111", Email: "joao@email.com", Address: "Rua das Flores, 123 - Vila Madalena", CTO: "CTO-001", Plan: "100MB"},
	{Name: "Empresa ABC Ltda", Phone: "+5511999992222", Email: "contato@abc.com", Address: "Av. Paulista, 1000 - Bela Vista", CTO: "CTO-002", Plan: "500MB"},
	{Name: "Maria Santos", Phone: "+5511999993333", Email: "maria@email.com", Address: "Rua Augusta, 456 - Consolação", CTO: "CTO-003", Plan: "200MB"},
}

var servicesData = []entities.Service{
	{Name: "Instalação Residencial", Category: constants.CategoryInstallation, BasePrice: 0, EstimatedDuration: 3},
	{Name: "Instalação Empresarial", Category: constants.CategoryInstallation, BasePrice: 0, EstimatedDuration: 4},
	{Name: "Reparo de Cabo Rompido", Category: constants.CategoryRepair, BasePrice: 150, EstimatedDuration: 2},
	{Name: "Troca de Equipamento ONT", Category: constants.CategoryMaintenance, BasePrice: 80, EstimatedDuration: 1},
	{Name: "Mudança de Endereço", Category: constants.CategoryRelocation, BasePrice: 100, EstimatedDuration: 3},
	{Name: "Upgrade de Plano", Category: constants.CategoryUpgrade, BasePrice: 0, EstimatedDuration: 1},
	{Name: "Reparo em CTO", Category: constants.CategoryRepair, BasePrice: 200, EstimatedDuration: 4},
	{Name: "Verificação de Sinal", Category: constants.CategoryDiagnostic, BasePrice: 50, EstimatedDuration: 1},
	{Name: "Emenda de Fibra", Category: constants.CategoryRepair, BasePrice: 120, EstimatedDuration: 2},
	{Name: "Cancelamento", Category: constants.CategoryCancellation, BasePrice: 0, EstimatedDuration: 1},
}

var techniciansData = []entities.Technician{
	{Name: "Carlos Fibra", Specialty: constants.CategoryInstallation, Region: "Zona Sul", Level: constants.LevelSenior},
	{Name: "Ana Conecta", Specialty: constants.CategoryRepair, Region: "Centro", Level: constants.LevelMid},
	{Name: "Roberto Rede", Specialty: constants.CategoryMaintenance, Region: "Zona Norte", Level: constants.LevelJunior},
	{Name: "Mariana Link", Specialty: constants.CategoryInstallation, Region: "Zona Oeste", Level: constants.LevelSenior},
	{Name: "Pedro Optical", Specialty: constants.CategoryRepair, Region: "Zona Leste", Level: constants.LevelMid},
}

var equipmentData = []entities.Equipment{
	{Name: "ONT Huawei HG8010H", Type: "ONT", UnitPrice: 150},
	{Name: "ONT Nokia G-010G-A", Type: "ONT", UnitPrice: 120},
	{Name: "Router Wi-Fi AC1200", Type: "Router", UnitPrice: 200},
	{Name: "Splitter 1x8", Type: "Splitter", UnitPrice: 25},
	{Name: "Cabo Drop 100m", Type: "Cabo", UnitPrice: 80},
	{Name: "Conector SC/APC", Type: "Conector", UnitPrice: 5},
	{Name: "Cordão Óptico 3m", Type: "Cordão", UnitPrice: 15},
}
