package storage

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

// Dataset é o conjunto inicial gravado uma única vez
type Dataset struct {
	Users        []models.User
	Clients      []models.Client
	ServiceTypes []models.ServiceType
	Teams        []models.Team
	Bookings     []models.Booking
}

// InitializeOnce grava o dataset inicial se a flag pulcro_initialized não
// estiver marcada. A flag é gravada por último: uma falha no meio do caminho
// faz a próxima chamada tentar de novo.
func (a *Adapter) InitializeOnce(ctx context.Context, now time.Time) (bool, error) {
	done, err := Read(ctx, a, KeyInitialized, false)
	if err != nil {
		return false, err
	}
	if done {
		return false, nil
	}

	ds := SeedData(now)

	if err := Write(ctx, a, KeyUsers, ds.Users); err != nil {
		return false, err
	}
	if err := Write(ctx, a, KeyClients, ds.Clients); err != nil {
		return false, err
	}
	if err := Write(ctx, a, KeyServiceTypes, ds.ServiceTypes); err != nil {
		return false, err
	}
	if err := Write(ctx, a, KeyTeams, ds.Teams); err != nil {
		return false, err
	}
	if err := Write(ctx, a, KeyBookings, ds.Bookings); err != nil {
		return false, err
	}
	if err := Write(ctx, a, KeyInitialized, true); err != nil {
		return false, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"clients":  len(ds.Clients),
		"bookings": len(ds.Bookings),
	}).Info("seed data written")

	return true, nil
}

// SeedData monta o dataset com agendamentos relativos a now (já no fuso da empresa)
func SeedData(now time.Time) Dataset {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(models.DateLayout)
	}

	return Dataset{
		Users: []models.User{
			{ID: "1", Username: "admin", Password: "admin", Level: models.LevelAdmin, Name: "Administrador", Email: "admin@pulcro.com", CreatedAt: now},
			{ID: "2", Username: "operador", Password: "operador", Level: models.LevelUser, Name: "Operador", Email: "operador@pulcro.com", CreatedAt: now},
		},
		Clients: []models.Client{
			{ID: "1", Name: "Hotel Palermo Plaza", Company: "Hotelería Palermo SA", Phone: "+5411-4832-1234", Email: "info@palermohotel.com.ar", Address: "Av. Santa Fe 1234, Palermo, Buenos Aires", TaxID: "30-12345678-9", Contact: "María Fernanda García", CreatedAt: now, UpdatedAt: now},
			{ID: "2", Name: "Parrilla El Asador", Company: "El Asador Parrilla SRL", Phone: "+5411-4567-8901", Email: "contacto@elasador.com.ar", Address: "Av. Corrientes 2456, San Telmo, Buenos Aires", TaxID: "30-87654321-0", Contact: "Carlos Alberto Martínez", CreatedAt: now, UpdatedAt: now},
			{ID: "3", Name: "Café Tortoni", Company: "Café Tortoni SA", Phone: "+5411-4342-4328", Email: "admin@cafetortoni.com.ar", Address: "Av. de Mayo 825, Monserrat, Buenos Aires", TaxID: "30-11223344-5", Contact: "Ana María López", CreatedAt: now, UpdatedAt: now},
			{ID: "4", Name: "Panadería La Baguette", Company: "La Baguette Panadería LTDA", Phone: "+5411-4801-2345", Email: "info@labaguette.com.ar", Address: "Av. Cabildo 1567, Belgrano, Buenos Aires", TaxID: "30-55667788-1", Contact: "Luis Miguel Rodríguez", CreatedAt: now, UpdatedAt: now},
			{ID: "5", Name: "Pizzería Napolitana", Company: "Napolitana Pizzas SRL", Phone: "+5411-4963-7890", Email: "pedidos@napolitana.com.ar", Address: "Av. Rivadavia 5432, Caballito, Buenos Aires", TaxID: "30-99887766-3", Contact: "Giuseppe Romano", CreatedAt: now, UpdatedAt: now},
		},
		ServiceTypes: []models.ServiceType{
			{ID: "1", Name: "Limpieza Básica de Campana", Price: 15000, Description: "Limpieza básica de campana extractora incluyendo filtros y desengrasado superficial", EstimatedMinutes: 120, Recurrence: models.RecurrenceMonthly, Category: models.CategoryBasic, CreatedAt: now},
			{ID: "2", Name: "Limpieza Completa de Campana", Price: 25000, Description: "Limpieza completa de campana, ductos y sistema de extracción con desengrasado profundo", EstimatedMinutes: 180, Recurrence: models.RecurrenceMonthly, Category: models.CategoryComplete, CreatedAt: now},
			{ID: "3", Name: "Mantenimiento de Ductos", Price: 18000, Description: "Limpieza y mantenimiento preventivo de ductos de ventilación", EstimatedMinutes: 150, Recurrence: models.RecurrenceQuarterly, Category: models.CategoryMaintenance, CreatedAt: now},
			{ID: "4", Name: "Inspección Técnica", Price: 8000, Description: "Inspección técnica completa del sistema de extracción y ventilación", EstimatedMinutes: 60, Recurrence: models.RecurrenceBiannual, Category: models.CategoryInspection, CreatedAt: now},
			{ID: "5", Name: "Desengrase Profundo", Price: 35000, Description: "Desengrase profundo de campanas industriales con productos especializados", EstimatedMinutes: 240, Recurrence: models.RecurrenceOnDemand, Category: models.CategorySpecialized, CreatedAt: now},
		},
		Teams: []models.Team{
			{ID: "1", Name: "Equipo Alpha", Leader: "Daniel Martínez", Phone: "+5411-4567-1111", Email: "daniel@pulcro.com.ar", Specialty: "Limpieza de Campanas", Active: true, CreatedAt: now},
			{ID: "2", Name: "Equipo Beta", Leader: "Carmen Ruiz", Phone: "+5411-4567-2222", Email: "carmen@pulcro.com.ar", Specialty: "Mantenimiento de Ductos", Active: true, CreatedAt: now},
			{ID: "3", Name: "Equipo Gamma", Leader: "Roberto Fernández", Phone: "+5411-4567-3333", Email: "roberto@pulcro.com.ar", Specialty: "Inspección y Desengrase", Active: true, CreatedAt: now},
			{ID: "4", Name: "Equipo Delta", Leader: "María José Pérez", Phone: "+5411-4567-4444", Email: "maria@pulcro.com.ar", Specialty: "Emergencias", Active: true, CreatedAt: now},
		},
		Bookings: []models.Booking{
			{ID: "1", ClientID: "1", ServiceTypeID: "1", TeamID: "1", Date: day(1), Time: "09:00", Status: domain.StatusScheduled, Priority: domain.PriorityMedium, Address: "Av. Santa Fe 1234, Palermo, Buenos Aires", Notes: "Limpieza programada mensual - Cocina principal", CreatedAt: now, UpdatedAt: now},
			{ID: "2", ClientID: "2", ServiceTypeID: "2", TeamID: "2", Date: day(2), Time: "14:00", Status: domain.StatusScheduled, Priority: domain.PriorityHigh, Address: "Av. Corrientes 2456, San Telmo, Buenos Aires", Notes: "Limpieza completa después de renovación de parrilla", CreatedAt: now, UpdatedAt: now},
			{ID: "3", ClientID: "3", ServiceTypeID: "3", TeamID: "3", Date: day(3), Time: "10:30", Status: domain.StatusScheduled, Priority: domain.PriorityMedium, Address: "Av. de Mayo 825, Monserrat, Buenos Aires", Notes: "Mantenimiento trimestral de ductos históricos", CreatedAt: now, UpdatedAt: now},
			{ID: "4", ClientID: "4", ServiceTypeID: "4", TeamID: "1", Date: day(5), Time: "16:00", Status: domain.StatusScheduled, Priority: domain.PriorityLow, Address: "Av. Cabildo 1567, Belgrano, Buenos Aires", Notes: "Inspección semestral - Verificar cumplimiento normativo", CreatedAt: now, UpdatedAt: now},
			{ID: "5", ClientID: "5", ServiceTypeID: "5", TeamID: "4", Date: day(7), Time: "11:00", Status: domain.StatusScheduled, Priority: domain.PriorityHigh, Address: "Av. Rivadavia 5432, Caballito, Buenos Aires", Notes: "Desengrase profundo horno industrial", CreatedAt: now, UpdatedAt: now},
			{ID: "6", ClientID: "1", ServiceTypeID: "1", TeamID: "2", Date: day(14), Time: "08:30", Status: domain.StatusScheduled, Priority: domain.PriorityMedium, Address: "Av. Santa Fe 1234, Palermo, Buenos Aires", Notes: "Limpieza mensual recurrente - Cocina secundaria", CreatedAt: now, UpdatedAt: now},
		},
	}
}
